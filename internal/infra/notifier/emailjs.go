package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

const defaultEmailJSURL = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSNotifier delivers reminders through the EmailJS HTTP API, the
// provider the mobile app already has a template registered with. Subject
// and message land in template params, not in a raw MIME body.
type EmailJSNotifier struct {
	serviceID  string
	templateID string
	publicKey  string
	baseURL    string
	httpClient *http.Client
}

func NewEmailJSNotifier(serviceID, templateID, publicKey, baseURL string) *EmailJSNotifier {
	if baseURL == "" {
		baseURL = defaultEmailJSURL
	}
	return &EmailJSNotifier{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		baseURL:    baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

func (e *EmailJSNotifier) Send(ctx context.Context, n domain.Notification) error {
	return e.post(ctx, map[string]any{
		"to_email":     n.To,
		"product_name": n.ItemName,
		"days_until":   n.DayOffset,
		"message":      n.Body,
		"subject":      n.Subject,
	})
}

// SendWelcome sends the onboarding mail the app triggers on registration.
func (e *EmailJSNotifier) SendWelcome(ctx context.Context, email, userName string) error {
	if userName == "" {
		userName = "Usuario"
	}
	return e.post(ctx, map[string]any{
		"to_email":  email,
		"user_name": userName,
		"message":   "¡Bienvenido a Mi Despensa! Ahora puedes gestionar tus productos y recibir alertas de vencimiento.",
	})
}

func (e *EmailJSNotifier) post(ctx context.Context, params map[string]any) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      e.serviceID,
		TemplateID:     e.templateID,
		UserID:         e.publicKey,
		TemplateParams: params,
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
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.ErrorContext(ctx, "emailjs rejected send",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

var _ domain.Notifier = (*EmailJSNotifier)(nil)
