package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/despensa-app/expiry-notifier/internal/infra/cooldown"
)

func TestCheckWithoutDependencies(t *testing.T) {
	c := NewChecker(nil, nil, "test")

	status := c.Check(context.Background())
	if status.Status != StatusHealthy {
		t.Errorf("status = %v, want healthy", status.Status)
	}
	if status.Stats != nil {
		t.Errorf("stats = %+v, want none without a local store", status.Stats)
	}
}

func TestCheckReportsCooldownStats(t *testing.T) {
	store := cooldown.NewMemoryStore()
	store.MarkSent(context.Background(), "p1", 3, time.Now())
	store.MarkSent(context.Background(), "p1", 1, time.Now())

	c := NewChecker(nil, store, "test")

	status := c.Check(context.Background())
	if status.Status != StatusHealthy {
		t.Fatalf("status = %v, want healthy", status.Status)
	}
	if status.Stats == nil || status.Stats.CooldownEntries != 2 {
		t.Errorf("stats = %+v, want 2 cooldown entries", status.Stats)
	}
}

func TestReadyHandlerPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := cooldown.NewMemoryStore()
	store.MarkSent(context.Background(), "p1", 0, time.Now())

	r := gin.New()
	r.GET("/health/ready", NewChecker(nil, store, "1.2.3").ReadyHandler())

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("version = %q", resp.Version)
	}
	if resp.Stats == nil || resp.Stats.CooldownEntries != 1 {
		t.Errorf("stats = %+v, want 1 cooldown entry", resp.Stats)
	}
}
