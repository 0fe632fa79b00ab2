// Package main is the entrypoint for the Daybook API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/cache"
	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/handler"
	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/middleware"
	"github.com/daybook/daybook/internal/repository"
	"github.com/daybook/daybook/internal/server"
	"github.com/daybook/daybook/internal/service"
	"github.com/daybook/daybook/internal/summary"
)

func main() {
	ctx := context.Background()

	// Load .env in development; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL, cache.Options{
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	tokens, err := auth.NewTokenService(cfg.AuthTokenKey, cfg.AccessTokenTTL)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewInMemory()

	// The summary pipeline is optional; without it entry writes simply stop
	// producing events and summaries go stale.
	var events service.EntryEventPublisher
	if cfg.SummaryWorkerEnabled {
		events = summary.NewPublisher(cacheClient.Client(), logger, recorder)
	}

	entryService := service.NewEntryService(repo, events, logger, recorder)
	draftService := service.NewDraftService(repo)
	quoteService := service.NewQuoteService(repo, cacheClient, logger, recorder)
	userService := service.NewUserService(repo, tokens, logger)
	summaryService := service.NewSummaryService(repo)
	goalService := service.NewGoalService(repo)
	milestoneService := service.NewMilestoneService(repo)
	analyticsService := service.NewAnalyticsService(repo)

	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	metricsHandler := handler.NewMetricsHandler(recorder)
	userHandler := handler.NewUserHandler(userService, logger)
	entryHandler := handler.NewEntryHandler(entryService, logger)
	draftHandler := handler.NewDraftHandler(draftService, logger)
	quoteHandler := handler.NewQuoteHandler(quoteService, logger)
	summaryHandler := handler.NewSummaryHandler(summaryService, logger)
	goalHandler := handler.NewGoalHandler(goalService, logger)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	r := setupRouter(routerDeps{
		cfg:        cfg,
		logger:     logger,
		cache:      cacheClient,
		tokens:     tokens,
		health:     healthHandler,
		metrics:    metricsHandler,
		users:      userHandler,
		entries:    entryHandler,
		drafts:     draftHandler,
		quotes:     quoteHandler,
		summaries:  summaryHandler,
		goals:      goalHandler,
		milestones: milestoneHandler,
		analytics:  analyticsHandler,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	if cfg.SummaryWorkerEnabled {
		worker := summary.NewWorker(cacheClient.Client(), repo, logger, summary.NewConsumerID(), recorder)
		workerCtx, cancelWorker := context.WithCancel(ctx)
		go func() {
			if err := worker.Run(workerCtx); err != nil {
				logger.Error("summary worker stopped", "error", err)
			}
		}()
		srv.OnShutdown("summary_worker", func(ctx context.Context) error {
			defer cancelWorker()
			return worker.Shutdown(ctx)
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"summary_worker", cfg.SummaryWorkerEnabled,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	cfg        *config.Config
	logger     *slog.Logger
	cache      *cache.Cache
	tokens     *auth.TokenService
	health     *handler.HealthHandler
	metrics    *handler.MetricsHandler
	users      *handler.UserHandler
	entries    *handler.EntryHandler
	drafts     *handler.DraftHandler
	quotes     *handler.QuoteHandler
	summaries  *handler.SummaryHandler
	goals      *handler.GoalHandler
	milestones *handler.MilestoneHandler
	analytics  *handler.AnalyticsHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	cfg := deps.cfg

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health and metrics endpoints (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	authCfg := middleware.AuthConfig{
		Logger: deps.logger,
		Tokens: deps.tokens,
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:            deps.logger,
		Limiter:           deps.cache,
		Enabled:           cfg.RateLimitEnabled,
		RequestsPerMinute: cfg.RateLimitRPM,
		Burst:             cfg.RateLimitBurst,
		AuthEndpointRPS:   cfg.AuthRateLimitRPS,
		AuthEndpointBurst: cfg.AuthRateLimitBurst,
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints, IP rate limited
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitIP(rateLimitCfg))
			r.Post("/auth/register", deps.users.Register)
			r.Post("/auth/login", deps.users.Login)
			r.Get("/quotes/daily", deps.quotes.Daily)
		})

		// Everything else requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))
			r.Use(middleware.RateLimitUser(rateLimitCfg))

			r.Route("/entries", func(r chi.Router) {
				r.Post("/", deps.entries.Create)
				r.Get("/", deps.entries.List)
				r.Get("/{id}", deps.entries.Get)
				r.Put("/{id}", deps.entries.Update)
				r.Delete("/{id}", deps.entries.Delete)
			})

			r.Route("/draft", func(r chi.Router) {
				r.Get("/", deps.drafts.Get)
				r.Put("/", deps.drafts.Save)
				r.Delete("/", deps.drafts.Discard)
			})

			r.Post("/quotes", deps.quotes.Create)
			r.Get("/summaries", deps.summaries.List)

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", deps.goals.Create)
				r.Get("/", deps.goals.List)
				r.Get("/stats", deps.goals.Stats)
				r.Get("/{id}", deps.goals.Get)
				r.Put("/{id}", deps.goals.Update)
				r.Delete("/{id}", deps.goals.Delete)
			})

			r.Route("/milestones", func(r chi.Router) {
				r.Post("/", deps.milestones.Create)
				r.Get("/", deps.milestones.List)
				r.Get("/{id}", deps.milestones.Get)
				r.Put("/{id}", deps.milestones.Update)
				r.Delete("/{id}", deps.milestones.Delete)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", deps.users.GetProfile)
				r.Put("/profile", deps.users.UpdateProfile)
			})

			r.Get("/analytics", deps.analytics.Overview)
		})
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL strips credentials from a connection URL for safe logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes secrets from error messages before logging.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
