package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SQLitePath string        `env:"SQLITE_PATH, default=database.sqlite"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`

	// RateLimit is the per-client request rate on /api, in requests
	// per second.
	RateLimit float64 `env:"RATE_LIMIT, default=20"`
}

// Load reads configuration from environment variables using go-envconfig.
// JWT_SECRET has no default on purpose: a guessable signing key would
// let anyone mint admin tokens, so startup fails without one.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
