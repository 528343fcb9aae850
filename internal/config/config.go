// Package config loads process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Metrics  MetricsConfig
	Location *time.Location
}

// AppConfig holds server-related configuration.
type AppConfig struct {
	Env             string
	Port            string
	ShutdownTimeout time.Duration
}

// IsDevelopment reports whether the process runs in development mode.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development"
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// StorageConfig selects and configures the kv.Store.
type StorageConfig struct {
	Driver      string
	DataDir     string
	DatabaseURL string
	MaxConns    int
}

// AuthConfig holds operator authentication settings.
type AuthConfig struct {
	JWTSecret            string
	JWTTTL               time.Duration
	OperatorUsername     string
	OperatorPasswordHash string
}

// Enabled reports whether API requests require a token.
func (a AuthConfig) Enabled() bool {
	return a.OperatorPasswordHash != ""
}

// MetricsConfig holds metrics-related configuration.
type MetricsConfig struct {
	Prefix string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timezone := getEnv("TIMEZONE", "UTC")
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", timezone, err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:             getEnv("APP_ENV", "development"),
			Port:            getEnv("APP_PORT", "8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", DriverFile),
			DataDir:     getEnv("DATA_DIR", "./data"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", ""),
			JWTTTL:               getEnvAsDuration("JWT_TTL", 12*time.Hour),
			OperatorUsername:     getEnv("OPERATOR_USERNAME", "operator"),
			OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "shopledger"),
		},
		Location: loc,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile:
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Auth.Enabled() && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when OPERATOR_PASSWORD_HASH is set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
