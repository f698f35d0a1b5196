// Package main is the entrypoint for the Shopfront API server.
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

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/cache"
	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/events"
	"github.com/shopfront/shopfront/internal/handler"
	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/middleware"
	"github.com/shopfront/shopfront/internal/repository"
	"github.com/shopfront/shopfront/internal/server"
	"github.com/shopfront/shopfront/internal/service"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize the in-memory store
	repo := repository.New(repository.DefaultCatalog())
	logger.Info("store initialized", "products", len(repository.DefaultCatalog()))

	// Initialize cache (optional)
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		logger.Info("connected to Redis", slog.String("redis_url", redactURL(cfg.RedisURL)))
	} else {
		logger.Info("REDIS_URL not set, auth rate limiting disabled")
	}

	hasher, err := auth.NewHasher(cfg.PasswordParams())
	if err != nil {
		logger.Error("invalid password hash parameters", "error", err)
		os.Exit(1)
	}

	metricsRecorder := metrics.NewInMemory()

	// Order events share the Redis connection when one is configured
	var (
		orderEvents    *events.Publisher
		orderPublisher service.OrderPublisher
	)
	if cacheClient != nil {
		orderEvents = events.NewPublisher(cacheClient.Client(), logger, metricsRecorder)
		orderPublisher = orderEvents
	}

	// Setup router
	r := setupRouter(cfg, logger, repo, cacheClient, orderPublisher, hasher, metricsRecorder)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("store", func(ctx context.Context) error {
		repo.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
		// Registered after redis so pending events drain before the client closes.
		srv.OnShutdown("order events", orderEvents.Close)
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

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
	switch strings.ToLower(level) {
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

// setupRouter builds services and handlers and configures the chi router.
// cacheClient and orderPublisher may be nil when Redis is not configured.
func setupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	repo *repository.Repository,
	cacheClient *cache.Cache,
	orderPublisher service.OrderPublisher,
	hasher *auth.Hasher,
	recorder *metrics.InMemoryRecorder,
) *chi.Mux {
	// Initialize services
	catalogService := service.NewCatalogService(repo)
	userService := service.NewUserService(repo, hasher, recorder)
	cartService := service.NewCartService(repo, repo, logger, recorder)
	checkoutService := service.NewCheckoutService(repo, repo, logger, recorder).WithPublisher(orderPublisher)

	// Initialize handlers
	h := handler.New()
	var healthHandler *handler.HealthHandler
	if cacheClient != nil {
		healthHandler = handler.NewHealthHandler(repo, cacheClient, logger)
	} else {
		healthHandler = handler.NewHealthHandler(repo, nil, logger)
	}
	metricsHandler := handler.NewMetricsHandler(recorder)
	productHandler := handler.NewProductHandler(catalogService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	statsHandler := handler.NewStatsHandler(repo, logger)

	// Rate limit middleware configuration
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Metrics: recorder,
		Enabled: cfg.RateLimitAuthEnabled,
		RPS:     cfg.RateLimitAuthRPS,
		Burst:   cfg.RateLimitAuthBurst,
	}
	if cacheClient != nil {
		rateLimitCfg.Limiter = cacheClient
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, "/healthz", "/readyz", "/metrics"))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:  cfg.IsDevelopment(),
		PublicPrefixes: []string{"/products"},
		PublicMaxAge:   cfg.CatalogCacheMaxAge,
	}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Health and metrics endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	// Catalog
	r.Get("/products", productHandler.List)
	r.Get("/products/{productId}", productHandler.Get)

	// Users (registration and login are rate limited per client IP)
	r.With(middleware.RateLimitIP(rateLimitCfg, "register")).Post("/register", userHandler.Register)
	r.With(middleware.RateLimitIP(rateLimitCfg, "login")).Post("/login", userHandler.Login)
	r.Get("/users", userHandler.List)

	// Cart and checkout
	r.Post("/cart", cartHandler.AddItem)
	r.Get("/cart/{userId}", cartHandler.Get)
	r.Post("/checkout/{userId}", checkoutHandler.Checkout)

	r.Get("/stats", statsHandler.Stats)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

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
