package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/despensa-app/expiry-notifier/internal/config"
	"github.com/despensa-app/expiry-notifier/internal/domain"
	"github.com/despensa-app/expiry-notifier/internal/handler"
	"github.com/despensa-app/expiry-notifier/internal/health"
	"github.com/despensa-app/expiry-notifier/internal/infra/cooldown"
	"github.com/despensa-app/expiry-notifier/internal/infra/inventory"
	"github.com/despensa-app/expiry-notifier/internal/infra/notifier"
	"github.com/despensa-app/expiry-notifier/internal/observability/logging"
	"github.com/despensa-app/expiry-notifier/internal/observability/metrics"
	"github.com/despensa-app/expiry-notifier/internal/scheduler"
	"github.com/despensa-app/expiry-notifier/internal/service/policy"
	"github.com/despensa-app/expiry-notifier/internal/service/scan"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	slog.SetDefault(logging.NewLogger(cfg.LogLevel, cfg.LogFormat))

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	location, err := cfg.Schedule.Location()
	if err != nil {
		slog.Error("failed to load scan timezone", slog.String("error", err.Error()))
		return 1
	}

	scanMetrics, err := metrics.NewScanMetrics()
	if err != nil {
		slog.Error("failed to initialize scan metrics", slog.String("error", err.Error()))
		return 1
	}

	// Cooldown store: in-memory by default, Redis when the dedup state
	// must survive restarts or be shared across instances.
	var (
		cooldownStore domain.CooldownStore
		memoryStore   *cooldown.MemoryStore
		redisClient   *redis.Client
	)
	switch cfg.CooldownBackend {
	case config.CooldownRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			slog.Error("failed to instrument redis tracing", slog.String("error", err.Error()))
			return 1
		}
		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			slog.Error("failed to instrument redis metrics", slog.String("error", err.Error()))
			return 1
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect redis",
				slog.String("addr", cfg.Redis.Addr),
				slog.String("error", err.Error()),
			)
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
		cooldownStore = cooldown.NewRedisStore(redisClient, cfg.Notify.Cooldown)
	default:
		memoryStore = cooldown.NewMemoryStore()
		cooldownStore = memoryStore
	}

	itemStore := inventory.NewClient(inventory.ClientConfig{
		FirestoreBaseURL: cfg.Inventory.FirestoreBaseURL,
		IdentityBaseURL:  cfg.Inventory.IdentityBaseURL,
		ProjectID:        cfg.Inventory.ProjectID,
		APIKey:           cfg.Inventory.APIKey,
	})

	notify, err := buildNotifier(cfg)
	if err != nil {
		slog.Error("failed to initialize notifier", slog.String("error", err.Error()))
		return 1
	}

	pol := policy.New(policy.Config{
		TriggerOffsets: cfg.Notify.TriggerOffsets,
		AnyNegative:    cfg.Notify.AnyNegative,
		Cooldown:       cfg.Notify.Cooldown,
	}, cooldownStore)

	scanService := scan.NewService(itemStore, cooldownStore, notify, pol, scanMetrics, scan.Config{
		Throttle: cfg.Notify.SendThrottle,
		Location: location,
	})

	daily := scheduler.New(scanService, cfg.Schedule.Hour, cfg.Schedule.Minute, location, cfg.Schedule.InitialDelay)
	go daily.Run(ctx)

	scanHandler := handler.NewScanHandler(scanService)
	cooldownHandler := handler.NewCooldownHandler(cooldownStore)
	statusHandler := handler.NewStatusHandler()

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(redisClient, statsSource(memoryStore), Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	r.GET("/", statusHandler.HandleRoot)
	r.GET("/ping", statusHandler.HandlePing)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/scan", scanHandler.HandleScanAll)
		v1.POST("/scan/owner/:ownerID", scanHandler.HandleScanOwner)
		v1.DELETE("/cooldowns/:itemID", cooldownHandler.HandlePurgeItem)

		// The welcome mail needs a registered template, which only the
		// EmailJS backend carries.
		if sender, ok := notify.(handler.WelcomeSender); ok {
			v1.POST("/welcome", handler.NewWelcomeHandler(sender).HandleSendWelcome)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("notifier", cfg.Notifier),
			slog.String("cooldown_backend", cfg.CooldownBackend),
			slog.String("timezone", cfg.Schedule.Timezone),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// statsSource keeps the checker's interface field nil when the Redis
// backend is active, instead of a typed-nil *MemoryStore.
func statsSource(s *cooldown.MemoryStore) health.CooldownStats {
	if s == nil {
		return nil
	}
	return s
}

func buildNotifier(cfg *config.Config) (domain.Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierSMTP:
		return notifier.NewSMTPNotifier(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		), nil
	case config.NotifierEmailJS:
		return notifier.NewEmailJSNotifier(
			cfg.EmailJS.ServiceID,
			cfg.EmailJS.TemplateID,
			cfg.EmailJS.PublicKey,
			cfg.EmailJS.BaseURL,
		), nil
	case config.NotifierExpo:
		return notifier.NewExpoNotifier(""), nil
	default:
		return nil, config.ErrUnknownNotifier
	}
}
