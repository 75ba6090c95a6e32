// Package config loads process settings from the environment. Command-line
// flags override whatever is loaded here.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

// Config holds the randomizer's process settings
type Config struct {
	// RedisAddr is the session store address; empty runs an embedded store
	RedisAddr string `env:"RANDOMIZER_REDIS_ADDR"`

	// CatalogPath points at a YAML card catalog; empty uses the bundled one
	CatalogPath string `env:"RANDOMIZER_CATALOG_PATH"`

	SessionTTL  time.Duration `env:"RANDOMIZER_SESSION_TTL" envDefault:"24h"`
	DefaultSets []string      `env:"RANDOMIZER_DEFAULT_SETS" envSeparator:"," envDefault:"base"`
	LogLevel    string        `env:"RANDOMIZER_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads a Config from environment variables
func ParseEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionTTL <= 0 {
		vb.Field("session_ttl", "must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}

	return vb.Build()
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.InvalidArgumentf("unknown log level %q", name)
	}
}
