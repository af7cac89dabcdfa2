package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=welcome_handler.go -destination=welcome_handler_mock.go -package=handler

// WelcomeSender is satisfied by notifier backends that carry an onboarding
// template. Registered only when such a backend is active.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, email, userName string) error
}

// WelcomeHandler serves the onboarding mail the app requests right after
// registration.
type WelcomeHandler struct {
	sender WelcomeSender
}

func NewWelcomeHandler(sender WelcomeSender) *WelcomeHandler {
	return &WelcomeHandler{
		sender: sender,
	}
}

type welcomeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	UserName string `json:"user_name"`
}

func (h *WelcomeHandler) HandleSendWelcome(c *gin.Context) {
	ctx := c.Request.Context()

	var req welcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.sender.SendWelcome(ctx, req.Email, req.UserName); err != nil {
		slog.ErrorContext(ctx, "welcome mail failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
