// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/shopfront/shopfront/internal/auth"
)

// Config holds all application configuration.
// All fields are populated from environment variables. None are required.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Cache (Redis). Empty disables the shared rate limiter.
	RedisURL string `env:"REDIS_URL"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting for /login and /register
	RateLimitAuthEnabled bool `env:"RATE_LIMIT_AUTH_ENABLED" envDefault:"true"`
	RateLimitAuthRPS     int  `env:"RATE_LIMIT_AUTH_RPS" envDefault:"5"`
	RateLimitAuthBurst   int  `env:"RATE_LIMIT_AUTH_BURST" envDefault:"10"`

	// Password hashing (argon2id)
	PasswordHashTime     uint32 `env:"PASSWORD_HASH_TIME" envDefault:"3"`
	PasswordHashMemoryKB uint32 `env:"PASSWORD_HASH_MEMORY_KB" envDefault:"65536"`
	PasswordHashThreads  uint8  `env:"PASSWORD_HASH_THREADS" envDefault:"4"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://example.com,https://app.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Client cache lifetime for catalog reads. Zero disables caching.
	CatalogCacheMaxAge time.Duration `env:"CATALOG_CACHE_MAX_AGE" envDefault:"60s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// PasswordParams returns the argon2id cost parameters.
func (c *Config) PasswordParams() auth.Params {
	params := auth.DefaultParams()
	params.Time = c.PasswordHashTime
	params.Memory = c.PasswordHashMemoryKB
	params.Threads = c.PasswordHashThreads
	return params
}

// Load reads optional dotenv files (".env" when none are given), then parses
// environment variables and returns a Config. Variables already set in the
// environment take precedence over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		// A missing file is not an error.
		_ = godotenv.Load(file)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat)
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.AppPort)
	}
	if c.CatalogCacheMaxAge < 0 {
		return fmt.Errorf("invalid CATALOG_CACHE_MAX_AGE %s", c.CatalogCacheMaxAge)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("invalid MAX_REQUEST_BODY_SIZE %d", c.MaxRequestBodySize)
	}
	return nil
}
