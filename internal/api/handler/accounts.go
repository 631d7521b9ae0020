package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wheely/backend/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// GetAccounts handles GET /accounts.
func (h *Handler) GetAccounts(c *gin.Context) {
	accounts, err := h.Accounts.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "accounts retrieved", accounts)
}

// GetAccountByID handles GET /accounts/:id.
func (h *Handler) GetAccountByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid account id")
		return
	}

	acc, err := h.Accounts.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "account found", acc)
}

// CreateAccount handles POST /accounts.
func (h *Handler) CreateAccount(c *gin.Context) {
	var acc models.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Accounts.Create(&acc)
	if err != nil {
		respondError(c, err)
		return
	}

	acc.ID = id
	acc.Password = ""
	respondSuccess(c, http.StatusCreated, "account created", acc)
}

// UpdateAccount handles PUT /accounts/:id.
func (h *Handler) UpdateAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid account id")
		return
	}

	var acc models.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Accounts.Update(id, &acc); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.Accounts.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "account updated", updated)
}

// DeleteAccount handles DELETE /accounts/:id.
func (h *Handler) DeleteAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.Accounts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "account deleted", nil)
}

// Login handles POST /accounts/login. Successful logins answer with the
// account plus a session token; repeated failures are throttled via Redis.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	throttled, err := h.Storage.IsLoginThrottled(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if throttled {
		respondFailure(c, http.StatusTooManyRequests, "too many failed attempts, try again later")
		return
	}

	acc, err := h.Accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if acc == nil {
		if err := h.Storage.RegisterFailedLogin(req.Email); err != nil {
			log.Printf("failed to register login failure: %v", err)
		}
		respondFailure(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.Storage.ResetFailedLogins(req.Email); err != nil {
		log.Printf("failed to reset login failures: %v", err)
	}

	token, err := generateJWT(acc.ID, h.jwtSecret)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "failed to create token")
		return
	}

	respondSuccess(c, http.StatusOK, "login successful", gin.H{
		"account": acc,
		"token":   token,
	})
}

// ChangePassword handles PUT /accounts/:id/password.
func (h *Handler) ChangePassword(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid account id")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Accounts.ChangePassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "password changed", nil)
}
