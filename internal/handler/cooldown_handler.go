package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// CooldownHandler lets the app purge reminder state when a product is
// deleted, keeping the cascading-cleanup invariant: a removed item must not
// leave cooldown records behind.
type CooldownHandler struct {
	cooldowns domain.CooldownStore
}

func NewCooldownHandler(cooldowns domain.CooldownStore) *CooldownHandler {
	return &CooldownHandler{
		cooldowns: cooldowns,
	}
}

func (h *CooldownHandler) HandlePurgeItem(c *gin.Context) {
	ctx := c.Request.Context()

	itemID := c.Param("itemID")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemID is required"})
		return
	}

	if err := h.cooldowns.PurgeItem(ctx, itemID); err != nil {
		slog.ErrorContext(ctx, "cooldown purge failed",
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "purge failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
