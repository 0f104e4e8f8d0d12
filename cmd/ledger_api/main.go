package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/customer_ledger_api/internal/adapters/database/memory"
	"github.com/SscSPs/customer_ledger_api/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/SscSPs/customer_ledger_api/internal/core/services"
	"github.com/SscSPs/customer_ledger_api/internal/handlers"
	"github.com/SscSPs/customer_ledger_api/internal/middleware"
	"github.com/SscSPs/customer_ledger_api/internal/platform/config"
	"github.com/SscSPs/customer_ledger_api/internal/utils"
	"github.com/SscSPs/customer_ledger_api/internal/utils/pii"
	"github.com/SscSPs/customer_ledger_api/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Customer Ledger API
// @version 1.0
// @description Customer and account records with an atomic transfer engine and an append-only ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	repos, cleanup, err := newRepositoryProvider(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	var tracker services.EventTracker
	if posthogClient.IsInitialized() {
		tracker = posthogClient
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, tracker)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
		corsConfig.AddExposeHeaders(middleware.RequestIDHeader, handlers.NextTokenHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining")
		r.Use(cors.New(corsConfig))
	}

	if cfg.RateLimit != "" {
		rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid RATE_LIMIT", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(rateLimiter))
	}

	r.Use(middleware.PosthogMiddleware(posthogClient))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageDriver),
		slog.Bool("auth_enabled", cfg.AuthEnabled))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the base logger: JSON in production, text otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newRepositoryProvider opens the configured storage and returns a cleanup func
// that releases it.
func newRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	cleanup := func() { database.ClosePgxPool(dbPool, logger) }

	var opts []pgsql.RepositoryOption
	if cfg.PIIEncryptionKey != "" {
		cipher, err := pii.NewCipher(cfg.PIIEncryptionKey)
		if err != nil {
			cleanup()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		opts = append(opts, pgsql.WithFieldCipher(cipher))
	} else {
		logger.Warn("PII_ENCRYPTION_KEY not set, customer fields are stored in plaintext")
	}

	return pgsql.NewRepositoryProvider(dbPool, opts...), cleanup, nil
}
