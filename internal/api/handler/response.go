package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wheely/backend/internal/apperr"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ApiResponse{Success: true, Message: message, Data: data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, ApiResponse{Success: false, Message: message})
}

// respondError translates a service failure into a transport status.
// Non-sentinel errors are storage faults: logged, answered generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondFailure(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		respondFailure(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("storage fault: %v", err)
		respondFailure(c, http.StatusInternalServerError, "internal server error")
	}
}
