package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the root status body and the keep-alive ping the
// hosting platform polls.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Backend de Mi Despensa funcionando",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *StatusHandler) HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
