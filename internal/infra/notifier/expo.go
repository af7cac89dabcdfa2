package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

const defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

// ExpoNotifier delivers reminders as Expo push messages. Notification.To
// carries the device's Expo push token instead of an email address.
type ExpoNotifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewExpoNotifier(baseURL string) *ExpoNotifier {
	if baseURL == "" {
		baseURL = defaultExpoPushURL
	}
	return &ExpoNotifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type expoPushMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Sound string         `json:"sound"`
	Data  map[string]any `json:"data,omitempty"`
}

type expoPushResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

func (e *ExpoNotifier) Send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(expoPushMessage{
		To:    n.To,
		Title: n.Subject,
		Body:  n.Body,
		Sound: "default",
		Data: map[string]any{
			"type":       n.Tier.String(),
			"days_until": n.DayOffset,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var pushResp expoPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	// Expo reports per-message errors inside a 200 response.
	if pushResp.Data.Status == "error" {
		return fmt.Errorf("expo push rejected: %s", pushResp.Data.Message)
	}

	return nil
}

var _ domain.Notifier = (*ExpoNotifier)(nil)
