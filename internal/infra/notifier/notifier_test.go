package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

func testNotification() domain.Notification {
	return domain.Notification{
		To:        "ana@example.com",
		Subject:   "⏰ Próximo a vencer: Leche",
		Body:      "Tu producto \"Leche\" vence en 3 día(s). Planifica usarlo pronto.",
		ItemName:  "Leche",
		DayOffset: 3,
		Tier:      domain.TierExpiresSoon,
	}
}

func TestEmailJSSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewEmailJSNotifier("svc-1", "tpl-1", "key-1", srv.URL)
	if err := n.Send(context.Background(), testNotification()); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got["service_id"] != "svc-1" || got["template_id"] != "tpl-1" || got["user_id"] != "key-1" {
		t.Errorf("credentials missing from payload: %v", got)
	}

	params, _ := got["template_params"].(map[string]any)
	if params["to_email"] != "ana@example.com" {
		t.Errorf("to_email = %v", params["to_email"])
	}
	if params["product_name"] != "Leche" {
		t.Errorf("product_name = %v", params["product_name"])
	}
	if params["days_until"] != float64(3) {
		t.Errorf("days_until = %v", params["days_until"])
	}
}

func TestEmailJSSendFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewEmailJSNotifier("svc-1", "tpl-1", "key-1", srv.URL)
	if err := n.Send(context.Background(), testNotification()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestExpoSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"status": "ok"},
		})
	}))
	defer srv.Close()

	n := NewExpoNotifier(srv.URL)

	note := testNotification()
	note.To = "ExponentPushToken[abc]"
	if err := n.Send(context.Background(), note); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got["to"] != "ExponentPushToken[abc]" {
		t.Errorf("to = %v", got["to"])
	}
	if got["title"] != note.Subject {
		t.Errorf("title = %v", got["title"])
	}
	if got["sound"] != "default" {
		t.Errorf("sound = %v", got["sound"])
	}
}

func TestExpoSendTicketError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"status": "error", "message": "DeviceNotRegistered"},
		})
	}))
	defer srv.Close()

	n := NewExpoNotifier(srv.URL)
	if err := n.Send(context.Background(), testNotification()); err == nil {
		t.Fatal("expected error when expo reports a per-message failure")
	}
}

func TestEmailJSSendWelcome(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewEmailJSNotifier("svc-1", "tpl-1", "key-1", srv.URL)
	if err := n.SendWelcome(context.Background(), "ana@example.com", ""); err != nil {
		t.Fatalf("SendWelcome: %v", err)
	}

	params, _ := got["template_params"].(map[string]any)
	if params["to_email"] != "ana@example.com" {
		t.Errorf("to_email = %v", params["to_email"])
	}
	if params["user_name"] != "Usuario" {
		t.Errorf("user_name = %v, want fallback name", params["user_name"])
	}
}
