package config

import "errors"

var (
	ErrInvalidTriggerOffsets = errors.New("TRIGGER_OFFSETS must be a comma-separated list of integers")
	ErrInvalidCooldown       = errors.New("COOLDOWN_HOURS must be a non-negative integer")
	ErrInvalidThrottle       = errors.New("SEND_THROTTLE_MS must be a non-negative integer")
	ErrInvalidSchedule       = errors.New("SCAN_SCHEDULE must be HH:MM")
	ErrInvalidTimezone       = errors.New("SCAN_TIMEZONE must be a valid IANA timezone")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrProjectIDMissing      = errors.New("FIRESTORE_PROJECT_ID is required")
	ErrAPIKeyMissing         = errors.New("FIREBASE_API_KEY is required")
	ErrSMTPHostMissing       = errors.New("SMTP_HOST is required")
	ErrSMTPCredentialsMissing    = errors.New("SMTP_USERNAME and SMTP_PASSWORD are required")
	ErrEmailJSCredentialsMissing = errors.New("EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY are required")
	ErrUnknownNotifier           = errors.New("NOTIFIER must be smtp, emailjs or expo")
	ErrUnknownCooldownBackend    = errors.New("COOLDOWN_BACKEND must be memory or redis")
)
