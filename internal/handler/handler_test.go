package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/despensa-app/expiry-notifier/internal/domain"
	"github.com/despensa-app/expiry-notifier/internal/infra/cooldown"
	"github.com/despensa-app/expiry-notifier/internal/service/policy"
	"github.com/despensa-app/expiry-notifier/internal/service/scan"
)

// newTestRouter wires the scan and cooldown routes over a mocked store and
// notifier so each test declares exactly the calls it expects.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *domain.MockItemStore, *domain.MockNotifier, domain.CooldownStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := domain.NewMockItemStore(ctrl)
	notifier := domain.NewMockNotifier(ctrl)
	cooldowns := cooldown.NewMemoryStore()
	pol := policy.New(policy.Config{
		TriggerOffsets: []int{7, 3, 1, 0, -1, -3},
		Cooldown:       12 * time.Hour,
	}, cooldowns)
	scans := scan.NewService(store, cooldowns, notifier, pol, nil, scan.Config{Location: time.UTC})

	r := gin.New()
	scanHandler := NewScanHandler(scans)
	cooldownHandler := NewCooldownHandler(cooldowns)
	r.POST("/api/v1/scan", scanHandler.HandleScanAll)
	r.POST("/api/v1/scan/owner/:ownerID", scanHandler.HandleScanOwner)
	r.DELETE("/api/v1/cooldowns/:itemID", cooldownHandler.HandlePurgeItem)

	return r, store, notifier, cooldowns
}

func TestHandleScanAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, store, notifier, _ := newTestRouter(t, ctrl)
	store.EXPECT().
		ListOwners(gomock.Any()).
		Return([]domain.Owner{{ID: "u1", Email: "ana@example.com"}}, nil)
	store.EXPECT().
		ListItems(gomock.Any(), "u1").
		Return([]domain.TrackedItem{
			{ID: "p1", OwnerID: "u1", Name: "Leche", ExpiryDate: "2025-06-10"},
		}, nil)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan?from=2025-06-07T08:00:00Z", nil)
	req.Header.Set("X-Run-ID", "manual-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		RunID  string      `json:"run_id"`
		Result scan.Result `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID != "manual-1" {
		t.Errorf("run_id = %q, want the provided header value", resp.RunID)
	}
	if resp.Result.Sent != 1 {
		t.Errorf("result = %+v, want one send", resp.Result)
	}
}

func TestHandleScanAllInvalidFrom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _, _, _ := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan?from=mañana", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleScanOwnerUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, store, _, _ := newTestRouter(t, ctrl)
	store.EXPECT().
		OwnerEmail(gomock.Any(), "ghost").
		Return("", domain.ErrOwnerNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan/owner/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandlePurgeItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _, _, cooldowns := newTestRouter(t, ctrl)
	ctx := context.Background()

	cooldowns.MarkSent(ctx, "p1", 3, time.Now())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cooldowns/p1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if _, found, _ := cooldowns.LastSent(ctx, "p1", 3); found {
		t.Error("cooldown record survived the purge endpoint")
	}
}

func TestHandleSendWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gin.SetMode(gin.TestMode)
	sender := NewMockWelcomeSender(ctrl)
	sender.EXPECT().
		SendWelcome(gomock.Any(), "ana@example.com", "Ana").
		Return(nil)

	r := gin.New()
	r.POST("/api/v1/welcome", NewWelcomeHandler(sender).HandleSendWelcome)

	body := strings.NewReader(`{"email":"ana@example.com","user_name":"Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/welcome", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestHandleSendWelcomeRequiresEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/welcome", NewWelcomeHandler(NewMockWelcomeSender(ctrl)).HandleSendWelcome)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/welcome", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
