package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"wheely/backend/internal/feed"
	"wheely/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeReportFeed handles GET /ws/reports: a bearer token from login is
// required, then the connection is upgraded and attached to the feed hub.
func (h *Handler) ServeReportFeed(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
		return
	}

	if _, err := validateJWT(strings.TrimPrefix(authHeader, "Bearer "), h.jwtSecret); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	// Upgrade writes its own HTTP error on failure, so no second response.
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &feed.Client{
		Hub:  h.Hub,
		Conn: conn,
		Send: make(chan models.Report, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
