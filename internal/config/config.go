package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selectors.
const (
	NotifierSMTP    = "smtp"
	NotifierEmailJS = "emailjs"
	NotifierExpo    = "expo"

	CooldownMemory = "memory"
	CooldownRedis  = "redis"
)

type Config struct {
	Port      string
	LogLevel  slog.Level
	LogFormat string

	// Notifier selects the delivery backend: smtp, emailjs or expo.
	Notifier string
	// CooldownBackend selects the dedup store: memory or redis.
	CooldownBackend string

	Notify    *NotifyConfig
	Schedule  *ScheduleConfig
	Inventory *InventoryConfig
	SMTP      *SMTPConfig
	EmailJS   *EmailJSConfig
	Redis     *RedisConfig
}

func Load() (*Config, error) {
	// Local development keeps credentials in .env; absence is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	notifier := strings.ToLower(os.Getenv("NOTIFIER"))
	if notifier == "" {
		notifier = NotifierEmailJS
	}

	cooldownBackend := strings.ToLower(os.Getenv("COOLDOWN_BACKEND"))
	if cooldownBackend == "" {
		cooldownBackend = CooldownMemory
	}

	notifyConfig, err := LoadNotifyConfig()
	if err != nil {
		return nil, err
	}

	scheduleConfig, err := LoadScheduleConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:       strings.ToLower(os.Getenv("LOG_FORMAT")),
		Notifier:        notifier,
		CooldownBackend: cooldownBackend,
		Notify:          notifyConfig,
		Schedule:        scheduleConfig,
		Inventory:       LoadInventoryConfig(),
		SMTP:            LoadSMTPConfig(),
		EmailJS:         LoadEmailJSConfig(),
		Redis:           redisConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
