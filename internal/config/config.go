package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "EzraPay"
	defaultAppEnv        = "development"
	defaultPort          = "3000"
	defaultLogLevel      = "info"
	defaultSchool        = "Cornell"
	defaultSessionTTL    = 24 * time.Hour
	defaultShutdownDelay = 10 * time.Second
	defaultIdemTTL       = 24 * time.Hour
	defaultLoginPerMin   = 5
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	DatabaseURL string
	RedisURL    string

	// Identity provider. When IdentityURL is empty the server falls back to the
	// in-process provider, which is only appropriate in development.
	IdentityURL    string
	IdentityAPIKey string

	JWTSecret  string
	SessionTTL time.Duration

	DefaultSchool string

	// Token minting. When TokenRPCURL is empty mint requests are logged, not submitted.
	TokenRPCURL    string
	TokenContract  string
	TokenSignerKey string

	LoginRatePerMin int
	IdempotencyTTL  time.Duration
	ShutdownPeriod  time.Duration
}

// Load reads configuration values from the environment (honoring a local .env
// file if present) and populates a Config instance.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          getEnv("APP_ENV", defaultAppEnv),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		IdentityURL:     os.Getenv("IDENTITY_URL"),
		IdentityAPIKey:  os.Getenv("IDENTITY_API_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionTTL:      defaultSessionTTL,
		DefaultSchool:   getEnv("DEFAULT_SCHOOL", defaultSchool),
		TokenRPCURL:     os.Getenv("RPC_URL"),
		TokenContract:   os.Getenv("BRB_TOKEN_ADDRESS"),
		TokenSignerKey:  os.Getenv("MINT_PRIVATE_KEY"),
		LoginRatePerMin: defaultLoginPerMin,
		IdempotencyTTL:  defaultIdemTTL,
		ShutdownPeriod:  defaultShutdownDelay,
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
		}
		cfg.IdempotencyTTL = d
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("LOGIN_RATE_PER_MIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOGIN_RATE_PER_MIN: %w", err)
		}
		cfg.LoginRatePerMin = n
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.IdentityURL == "" {
			return Config{}, fmt.Errorf("IDENTITY_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// IsDev reports whether the configured environment is a development one.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
