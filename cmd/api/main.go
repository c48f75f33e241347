// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/meucorpo/internal/admin"
	"github.com/carterperez-dev/meucorpo/internal/catalog"
	"github.com/carterperez-dev/meucorpo/internal/config"
	"github.com/carterperez-dev/meucorpo/internal/core"
	"github.com/carterperez-dev/meucorpo/internal/health"
	"github.com/carterperez-dev/meucorpo/internal/metrics"
	"github.com/carterperez-dev/meucorpo/internal/middleware"
	"github.com/carterperez-dev/meucorpo/internal/referral"
	"github.com/carterperez-dev/meucorpo/internal/server"
	"github.com/carterperez-dev/meucorpo/internal/session"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	startedAt := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	var redis *core.Redis
	if cfg.RedisEnabled() {
		redis, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	} else {
		logger.Info("redis not configured, rate limiting is per instance")
	}

	store := session.NewStore(session.StoreConfig{
		Session: session.Options{
			TrialDays:        cfg.Trial.Days,
			TickInterval:     cfg.Trial.TickInterval,
			CopiedResetDelay: cfg.Session.CopiedResetDelay,
			Logger:           logger,
		},
		IdleTTL:         cfg.Session.IdleTTL,
		MaxSessions:     cfg.Session.MaxSessions,
		JanitorSchedule: cfg.Session.JanitorSchedule,
	})
	if err := store.StartJanitor(); err != nil {
		return err
	}
	logger.Info("session store ready",
		"idle_ttl", cfg.Session.IdleTTL,
		"max_sessions", cfg.Session.MaxSessions,
		"janitor", cfg.Session.JanitorSchedule,
	)

	sessionSvc := session.NewService(session.ServiceConfig{
		Repo: store,
		Sharer: referral.NewSharer(referral.Config{
			Code:     cfg.Referral.Code,
			ShareURL: cfg.Referral.ShareURL,
			Message:  cfg.Referral.Message,
		}),
		Clipboard: referral.LogClipboard{Logger: logger},
		Launcher:  referral.LogLauncher{Logger: logger},
	})
	sessionHandler := session.NewHandler(sessionSvc)
	metricsHandler := metrics.NewHandler()
	catalogHandler := catalog.NewHandler()

	deps := []health.Dependency{
		{Name: "sessions", Checker: store},
	}
	adminCfg := admin.HandlerConfig{
		SessionCount: store.Len,
		SessionPing:  store.Ping,
		StartedAt:    startedAt,
	}
	if redis != nil {
		deps = append(deps, health.Dependency{
			Name:     "redis",
			Checker:  redis,
			Optional: true,
		})
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
	}
	healthHandler := health.NewHandler(deps...)
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	rateLimiter := middleware.NewRateLimiter(redis.Raw(), middleware.RateLimitConfig{
		Limit: middleware.PerWindow(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		KeyFunc:    middleware.KeyByIPAndEndpoint,
		BypassFunc: middleware.SkipProbes,
		FailOpen:   true,
	})
	defer rateLimiter.Close()

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(rateLimiter.Handler)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Route("/v1", func(r chi.Router) {
		metricsHandler.RegisterRoutes(r)
		catalogHandler.RegisterRoutes(r)
		sessionHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		store.Close()
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	store.Close()
	logger.Info("session store closed")

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
