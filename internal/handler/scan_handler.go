package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/despensa-app/expiry-notifier/internal/domain"
	"github.com/despensa-app/expiry-notifier/internal/service/scan"
)

// ScanHandler exposes the run-now entry points. The daily scheduler calls
// the scan service directly; these endpoints exist for manual triggering and
// for the app's per-user refresh.
type ScanHandler struct {
	scans *scan.Service
}

func NewScanHandler(scans *scan.Service) *ScanHandler {
	return &ScanHandler{
		scans: scans,
	}
}

// HandleScanAll runs a batch scan over every owner. An optional from query
// parameter (RFC3339) substitutes a virtual reference time, which keeps
// verification of date-window behavior possible without waiting for the
// calendar.
func (h *ScanHandler) HandleScanAll(c *gin.Context) {
	now, ok := h.referenceTime(c)
	if !ok {
		return
	}
	h.runScan(c, domain.ScopeAll(), now)
}

// HandleScanOwner runs a scan for a single owner.
func (h *ScanHandler) HandleScanOwner(c *gin.Context) {
	ownerID := c.Param("ownerID")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerID is required"})
		return
	}

	now, ok := h.referenceTime(c)
	if !ok {
		return
	}
	h.runScan(c, domain.ScopeOwner(ownerID), now)
}

func (h *ScanHandler) runScan(c *gin.Context, scope domain.Scope, now time.Time) {
	ctx := c.Request.Context()

	runID := c.GetHeader("X-Run-ID")
	if runID == "" {
		runID = uuid.NewString()
	}

	result, err := h.scans.Run(ctx, scope, now, runID)
	switch {
	case errors.Is(err, domain.ErrScanInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error":  "scan already in progress",
			"run_id": runID,
		})
		return
	case errors.Is(err, domain.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
		return
	case err != nil:
		slog.ErrorContext(ctx, "scan failed",
			slog.String("run_id", runID),
			slog.String("scope", scope.Key()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "scan failed",
			"run_id": runID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": runID,
		"scope":  scope.Key(),
		"result": result,
	})
}

// referenceTime extracts the optional virtual reference time. The second
// return value is false when the request was already answered with an error.
func (h *ScanHandler) referenceTime(c *gin.Context) (time.Time, bool) {
	fromStr := c.Query("from")
	if fromStr == "" {
		return time.Time{}, true
	}

	parsed, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from time format, expected RFC3339"})
		return time.Time{}, false
	}

	slog.InfoContext(c.Request.Context(), "using virtual time",
		slog.Time("virtual_now", parsed),
	)
	return parsed, true
}
