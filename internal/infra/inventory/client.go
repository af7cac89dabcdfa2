package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

const itemsCollection = "productos"

// Client reads tracked items and owner accounts from the Firebase project
// backing the mobile app: Firestore REST for documents, Identity Toolkit for
// accounts. Writes stay with the app; this service only scans.
type Client struct {
	firestoreURL string
	identityURL  string
	projectID    string
	apiKey       string
	httpClient   *http.Client
}

type ClientConfig struct {
	// FirestoreBaseURL and IdentityBaseURL override the Google endpoints,
	// used by tests.
	FirestoreBaseURL string
	IdentityBaseURL  string
	ProjectID        string
	APIKey           string
}

func NewClient(cfg ClientConfig) *Client {
	firestoreURL := cfg.FirestoreBaseURL
	if firestoreURL == "" {
		firestoreURL = "https://firestore.googleapis.com/v1"
	}
	identityURL := cfg.IdentityBaseURL
	if identityURL == "" {
		identityURL = "https://identitytoolkit.googleapis.com/v1"
	}

	return &Client{
		firestoreURL: firestoreURL,
		identityURL:  identityURL,
		projectID:    cfg.ProjectID,
		apiKey:       cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	resp, err := c.lookup(ctx, lookupRequest{ReturnUserInfo: true})
	if err != nil {
		return nil, err
	}

	owners := make([]domain.Owner, 0, len(resp.Users))
	for _, u := range resp.Users {
		owners = append(owners, domain.Owner{
			ID:    u.LocalID,
			Email: u.Email,
		})
	}

	slog.DebugContext(ctx, "fetched owners", slog.Int("count", len(owners)))
	return owners, nil
}

func (c *Client) OwnerEmail(ctx context.Context, ownerID string) (string, error) {
	resp, err := c.lookup(ctx, lookupRequest{LocalID: []string{ownerID}})
	if err != nil {
		return "", err
	}
	if len(resp.Users) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrOwnerNotFound, ownerID)
	}
	return resp.Users[0].Email, nil
}

// ListItems fetches the whole product collection and filters by owner on the
// client side, matching how the app queries it. Pagination is followed until
// the store stops returning a token.
func (c *Client) ListItems(ctx context.Context, ownerID string) ([]domain.TrackedItem, error) {
	var items []domain.TrackedItem

	pageToken := ""
	for {
		page, err := c.listDocuments(ctx, pageToken)
		if err != nil {
			return nil, err
		}

		for _, doc := range page.Documents {
			item := docToItem(doc)
			if ownerID != "" && item.OwnerID != ownerID {
				continue
			}
			items = append(items, item)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	slog.DebugContext(ctx, "fetched items",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(items)),
	)
	return items, nil
}

func (c *Client) listDocuments(ctx context.Context, pageToken string) (*listDocumentsResponse, error) {
	u, err := url.Parse(c.firestoreURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse firestore base URL: %w", err)
	}
	u.Path = path.Join(u.Path,
		"projects", c.projectID, "databases", "(default)", "documents", itemsCollection)
	if pageToken != "" {
		q := u.Query()
		q.Set("pageToken", pageToken)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch documents from firestore",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from firestore",
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var page listDocumentsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &page, nil
}

func (c *Client) lookup(ctx context.Context, reqBody lookupRequest) (*lookupResponse, error) {
	u, err := url.Parse(c.identityURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity base URL: %w", err)
	}
	u.Path = path.Join(u.Path, "accounts:lookup")
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up accounts",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from identity toolkit",
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var lookup lookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &lookup, nil
}

func docToItem(doc document) domain.TrackedItem {
	item := domain.TrackedItem{
		// Document names look like
		// projects/<pid>/databases/(default)/documents/productos/<id>.
		ID:         path.Base(doc.Name),
		OwnerID:    doc.Fields["userId"].StringValue,
		Name:       doc.Fields["name"].StringValue,
		Category:   doc.Fields["category"].StringValue,
		ExpiryDate: doc.Fields["expire_date"].StringValue,
	}

	// The app writes quantity as a string; older documents may carry a
	// Firestore integer.
	qty := doc.Fields["quantity"]
	raw := qty.StringValue
	if raw == "" {
		raw = qty.IntegerValue
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		item.Quantity = n
	}

	return item
}

var _ domain.ItemStore = (*Client)(nil)
