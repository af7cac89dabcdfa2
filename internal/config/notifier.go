package config

import "os"

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func LoadSMTPConfig() *SMTPConfig {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "465"
	}
	return &SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func (c *SMTPConfig) Validate() error {
	if c == nil || c.Host == "" {
		return ErrSMTPHostMissing
	}
	if c.Username == "" || c.Password == "" {
		return ErrSMTPCredentialsMissing
	}
	return nil
}

type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
}

func LoadEmailJSConfig() *EmailJSConfig {
	return &EmailJSConfig{
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		BaseURL:    os.Getenv("EMAILJS_BASE_URL"),
	}
}

func (c *EmailJSConfig) Validate() error {
	if c == nil || c.ServiceID == "" || c.TemplateID == "" || c.PublicKey == "" {
		return ErrEmailJSCredentialsMissing
	}
	return nil
}
