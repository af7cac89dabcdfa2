package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// SMTPNotifier delivers reminders as transactional email over implicit TLS
// (port 465 style submission).
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPNotifier(host, port, username, password, from string) *SMTPNotifier {
	if from == "" {
		from = username
	}
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPNotifier) Send(ctx context.Context, n domain.Notification) error {
	contentType := "text/plain"
	body := n.Body
	if n.BodyHTML != "" {
		contentType = "text/html"
		body = n.BodyHTML
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", n.To) +
			fmt.Sprintf("Subject: %s\r\n", n.Subject) +
			"MIME-Version: 1.0\r\n" +
			fmt.Sprintf("Content-Type: %s; charset=\"utf-8\"\r\n", contentType) +
			"\r\n" +
			body,
	)

	addr := net.JoinHostPort(s.host, s.port)
	dialer := &tls.Dialer{
		Config: &tls.Config{ServerName: s.host},
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(n.To); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return nil
}

var _ domain.Notifier = (*SMTPNotifier)(nil)
