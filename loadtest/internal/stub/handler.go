package stub

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage *InventoryStorage
}

func NewHandler(storage *InventoryStorage) *Handler {
	return &Handler{storage: storage}
}

// Register wires the control endpoints plus the upstream surfaces the
// scanner talks to: Firestore document listing, Identity Toolkit account
// lookup and the EmailJS send endpoint.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/seed", h.HandleSeed)
	r.POST("/reset", h.HandleReset)
	r.GET("/deliveries", h.HandleDeliveries)

	r.GET("/v1/projects/:projectID/databases/:database/documents/productos", h.HandleListDocuments)
	// gin reads ':' as a wildcard marker, so accounts:lookup is matched
	// through a parameter and checked by hand.
	r.POST("/v1/:action", h.HandleAccountsLookup)
	r.POST("/api/v1.0/email/send", h.HandleSendEmail)
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	totalItems := 0
	for _, so := range req.Owners {
		items := make([]ItemRecord, 0, len(so.Items))
		for _, si := range so.Items {
			items = append(items, ItemRecord{
				Name:       si.Name,
				Category:   si.Category,
				Quantity:   si.Quantity,
				ExpiryDate: now.AddDate(0, 0, si.DaysUntilExpiry).Format("2006-01-02"),
			})
		}
		h.storage.AddOwner(runID, OwnerRecord{ID: so.ID, Email: so.Email}, items)
		totalItems += len(items)
	}

	slog.Info("seeded data",
		slog.String("run_id", runID),
		slog.Int("owner_count", len(req.Owners)),
		slog.Int("item_count", totalItems),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":      "seeded",
		"run_id":      runID,
		"owner_count": len(req.Owners),
		"item_count":  totalItems,
	})
}

// GET /v1/projects/:projectID/databases/(default)/documents/productos
func (h *Handler) HandleListDocuments(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	projectID := c.Param("projectID")

	items := h.storage.Items(runID)

	documents := make([]document, 0, len(items))
	for _, item := range items {
		documents = append(documents, document{
			Name: fmt.Sprintf("projects/%s/databases/(default)/documents/productos/%s",
				projectID, item.ID),
			Fields: map[string]value{
				"userId":      {StringValue: item.OwnerID},
				"name":        {StringValue: item.Name},
				"category":    {StringValue: item.Category},
				"quantity":    {StringValue: fmt.Sprintf("%d", item.Quantity)},
				"expire_date": {StringValue: item.ExpiryDate},
			},
		})
	}

	slog.Debug("list documents",
		slog.String("run_id", runID),
		slog.Int("count", len(documents)),
	)

	c.JSON(http.StatusOK, listDocumentsResponse{Documents: documents})
}

// POST /v1/accounts:lookup
func (h *Handler) HandleAccountsLookup(c *gin.Context) {
	if c.Param("action") != "accounts:lookup" {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
		return
	}

	runID := c.DefaultQuery("run_id", "default")

	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owners := h.storage.Owners(runID)

	users := make([]lookupUser, 0, len(owners))
	for _, owner := range owners {
		if len(req.LocalID) > 0 && !contains(req.LocalID, owner.ID) {
			continue
		}
		users = append(users, lookupUser{LocalID: owner.ID, Email: owner.Email})
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// POST /api/v1.0/email/send
func (h *Handler) HandleSendEmail(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req emailSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivery := Delivery{ReceivedAt: time.Now()}
	if v, ok := req.TemplateParams["to_email"].(string); ok {
		delivery.To = v
	}
	if v, ok := req.TemplateParams["product_name"].(string); ok {
		delivery.ProductName = v
	}
	if v, ok := req.TemplateParams["subject"].(string); ok {
		delivery.Subject = v
	}

	h.storage.RecordDelivery(runID, delivery)

	slog.Debug("accepted send",
		slog.String("run_id", runID),
		slog.String("to", delivery.To),
		slog.String("product", delivery.ProductName),
	)

	c.String(http.StatusOK, "OK")
}

// GET /deliveries?run_id=...
func (h *Handler) HandleDeliveries(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	deliveries := h.storage.Deliveries(runID)

	out := make([]DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, DeliveryResponse{
			To:          d.To,
			ProductName: d.ProductName,
			Subject:     d.Subject,
			ReceivedAt:  d.ReceivedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveries": out,
		"count":      len(out),
	})
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
