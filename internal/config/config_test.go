package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 4, cfg.Analyzer.Workers)
	assert.Empty(t, cfg.Analyzer.PatternsFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("ANALYZER_WORKERS", "8")
	t.Setenv("PATTERNS_FILE", "/etc/pagelift/patterns.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 8, cfg.Analyzer.Workers)
	assert.Equal(t, "/etc/pagelift/patterns.yaml", cfg.Analyzer.PatternsFile)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("ANALYZER_WORKERS", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "garbage")

	cfg := LoadOrDefault()
	assert.Equal(t, Default(), cfg)
}

func TestDefaultMatchesLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
