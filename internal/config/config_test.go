package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/kingdom-randomizer/internal/config"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := config.ParseEnv()
	require.NoError(t, err)

	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"base"}, cfg.DefaultSets)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("RANDOMIZER_REDIS_ADDR", "localhost:6380")
	t.Setenv("RANDOMIZER_CATALOG_PATH", "/tmp/cards.yaml")
	t.Setenv("RANDOMIZER_SESSION_TTL", "90m")
	t.Setenv("RANDOMIZER_DEFAULT_SETS", "base,intrigue")
	t.Setenv("RANDOMIZER_LOG_LEVEL", "debug")

	cfg, err := config.ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6380", cfg.RedisAddr)
	assert.Equal(t, "/tmp/cards.yaml", cfg.CatalogPath)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"base", "intrigue"}, cfg.DefaultSets)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnvErrors(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "malformed duration", key: "RANDOMIZER_SESSION_TTL", value: "soon"},
		{name: "non-positive duration", key: "RANDOMIZER_SESSION_TTL", value: "0s"},
		{name: "unknown log level", key: "RANDOMIZER_LOG_LEVEL", value: "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.ParseEnv()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel(" Warning ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = config.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = config.ParseLevel("verbose")
	assert.Error(t, err)
}
