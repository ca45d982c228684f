package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration. Every field is read from a
// CAPPLAN_* environment variable, optionally seeded from a .env file.
type Config struct {
	// DB is either a Postgres URL (postgres:// or postgresql://) or a SQLite
	// file path. Empty means ~/.capplan/capplan.db.
	DB       string `env:"CAPPLAN_DB"`
	HTTPAddr string `env:"CAPPLAN_HTTP_ADDR" envDefault:":8080"`

	LogLevel string `env:"CAPPLAN_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"CAPPLAN_LOG_FILE"`

	DBRetryMaxAttempts uint          `env:"CAPPLAN_DB_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	DBRetryInitial     time.Duration `env:"CAPPLAN_DB_RETRY_INITIAL" envDefault:"250ms"`
	DBRetryMaxInterval time.Duration `env:"CAPPLAN_DB_RETRY_MAX_INTERVAL" envDefault:"5s"`

	UseCaseLog bool `env:"CAPPLAN_USE_CASE_LOG" envDefault:"false"`
}

// Load reads .env from the working directory (a missing file is fine), then
// parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.DB == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DB = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DefaultDBPath is ~/.capplan/capplan.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".capplan", "capplan.db"), nil
}

// Validate rejects values that would make startup fail later in a less
// obvious way.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("CAPPLAN_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	if c.DBRetryMaxAttempts == 0 {
		return fmt.Errorf("CAPPLAN_DB_RETRY_MAX_ATTEMPTS must be >= 1")
	}
	if c.DBRetryInitial <= 0 || c.DBRetryMaxInterval < c.DBRetryInitial {
		return fmt.Errorf("CAPPLAN_DB_RETRY_INITIAL must be > 0 and <= CAPPLAN_DB_RETRY_MAX_INTERVAL")
	}
	return nil
}
