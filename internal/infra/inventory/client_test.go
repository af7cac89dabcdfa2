package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

const docPrefix = "projects/test-project/databases/(default)/documents/productos/"

func firestoreDoc(id string, fields map[string]any) map[string]any {
	return map[string]any{
		"name":   docPrefix + id,
		"fields": fields,
	}
}

func stringValue(v string) map[string]any {
	return map[string]any{"stringValue": v}
}

func TestListItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/test-project/databases/(default)/documents/productos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"documents": []any{
				firestoreDoc("p1", map[string]any{
					"name":        stringValue("Leche"),
					"category":    stringValue("Lácteos"),
					"quantity":    stringValue("2"),
					"expire_date": stringValue("2025-06-10"),
					"userId":      stringValue("u1"),
				}),
				firestoreDoc("p2", map[string]any{
					"name":     stringValue("Arroz"),
					"quantity": map[string]any{"integerValue": "5"},
					"userId":   stringValue("u2"),
				}),
			},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		FirestoreBaseURL: srv.URL,
		ProjectID:        "test-project",
		APIKey:           "test-key",
	})

	t.Run("all owners", func(t *testing.T) {
		items, err := client.ListItems(context.Background(), "")
		if err != nil {
			t.Fatalf("ListItems: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2", len(items))
		}

		want := domain.TrackedItem{
			ID:         "p1",
			OwnerID:    "u1",
			Name:       "Leche",
			Category:   "Lácteos",
			Quantity:   2,
			ExpiryDate: "2025-06-10",
		}
		if items[0] != want {
			t.Errorf("items[0] = %+v, want %+v", items[0], want)
		}

		// Integer-typed quantity and missing expiry both parse.
		if items[1].Quantity != 5 {
			t.Errorf("items[1].Quantity = %d, want 5", items[1].Quantity)
		}
		if items[1].HasExpiry() {
			t.Error("items[1] should have no expiry")
		}
	})

	t.Run("filtered by owner", func(t *testing.T) {
		items, err := client.ListItems(context.Background(), "u2")
		if err != nil {
			t.Fatalf("ListItems: %v", err)
		}
		if len(items) != 1 || items[0].ID != "p2" {
			t.Fatalf("got %+v, want exactly p2", items)
		}
	})
}

func TestListItemsPagination(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("pageToken") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"documents": []any{
					firestoreDoc("p1", map[string]any{"userId": stringValue("u1")}),
				},
				"nextPageToken": "page-2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"documents": []any{
				firestoreDoc("p2", map[string]any{"userId": stringValue("u1")}),
			},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{FirestoreBaseURL: srv.URL, ProjectID: "test-project"})

	items, err := client.ListItems(context.Background(), "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}

func TestListItemsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{FirestoreBaseURL: srv.URL, ProjectID: "test-project"})

	if _, err := client.ListItems(context.Background(), ""); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestListOwners(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if req["returnUserInfo"] != true {
			t.Errorf("returnUserInfo missing from request: %v", req)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"users": []any{
				map[string]any{"localId": "u1", "email": "ana@example.com"},
				map[string]any{"localId": "u2"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{IdentityBaseURL: srv.URL, APIKey: "test-key"})

	owners, err := client.ListOwners(context.Background())
	if err != nil {
		t.Fatalf("ListOwners: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("got %d owners, want 2", len(owners))
	}
	if owners[0].Email != "ana@example.com" || !owners[0].Notifiable() {
		t.Errorf("owners[0] = %+v", owners[0])
	}
	if owners[1].Notifiable() {
		t.Errorf("owner without email must not be notifiable: %+v", owners[1])
	}
}

func TestOwnerEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		ids, _ := req["localId"].([]any)
		if len(ids) != 1 || ids[0] != "u1" {
			json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"users": []any{map[string]any{"localId": "u1", "email": "ana@example.com"}},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{IdentityBaseURL: srv.URL})

	email, err := client.OwnerEmail(context.Background(), "u1")
	if err != nil {
		t.Fatalf("OwnerEmail: %v", err)
	}
	if email != "ana@example.com" {
		t.Errorf("email = %q", email)
	}

	if _, err := client.OwnerEmail(context.Background(), "missing"); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Errorf("err = %v, want ErrOwnerNotFound", err)
	}
}
