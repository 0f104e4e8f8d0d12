package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	LogLevel      string
	StorageDriver string

	RunMigrations  bool
	MigrationsPath string
	DBMaxConns     int32

	TransferMaxRetries   int
	TransferRetryBackoff time.Duration

	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string

	PIIEncryptionKey string // hex encoded, 32 bytes

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	loadEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		LogLevel:         strings.ToLower(viper.GetString("LOG_LEVEL")),
		StorageDriver:    strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		RunMigrations:    viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		DBMaxConns:       viper.GetInt32("DB_MAX_CONNS"),
		AuthEnabled:      viper.GetBool("AUTH_ENABLED"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		PIIEncryptionKey: viper.GetString("PII_ENCRYPTION_KEY"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	cfg.TransferMaxRetries = viper.GetInt("TRANSFER_MAX_RETRIES")
	if cfg.TransferMaxRetries < 0 {
		log.Printf("Warning: TRANSFER_MAX_RETRIES (%d) is negative. Defaulting to 0.\n", cfg.TransferMaxRetries)
		cfg.TransferMaxRetries = 0
	}

	backoffStr := viper.GetString("TRANSFER_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil || backoff < 0 {
		backoff = 10 * time.Millisecond
		log.Printf("Warning: Invalid value for TRANSFER_RETRY_BACKOFF ('%s'). Defaulting to %s.\n", backoffStr, backoff.String())
	}
	cfg.TransferRetryBackoff = backoff

	if cfg.DBMaxConns <= 0 {
		log.Printf("Warning: DB_MAX_CONNS (%d) must be positive. Defaulting to 10.\n", cfg.DBMaxConns)
		cfg.DBMaxConns = 10
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is true")
	}

	if cfg.IsProduction && cfg.StorageDriver == StoragePostgres && cfg.PIIEncryptionKey == "" {
		return nil, fmt.Errorf("PII_ENCRYPTION_KEY is required in production")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// LoadAuthConfig loads only the token settings, for tools that never open storage.
func LoadAuthConfig() (jwtSecret, jwtIssuer string) {
	loadEnv()
	return viper.GetString("JWT_SECRET"), viper.GetString("JWT_ISSUER")
}

func loadEnv() {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("TRANSFER_MAX_RETRIES", 3)
	viper.SetDefault("TRANSFER_RETRY_BACKOFF", "10ms")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "customer-ledger-api")
	viper.SetDefault("PII_ENCRYPTION_KEY", "")
	viper.SetDefault("RATE_LIMIT", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()
}
