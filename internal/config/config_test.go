package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.InDelta(t, 50, cfg.RateLimitRPS, 1e-9)
	assert.Empty(t, cfg.CatalogRegistryURL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("RATE_LIMIT_RPS", "10")
	t.Setenv("CATALOG_REGISTRY_URL", "http://registry.local")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.InDelta(t, 10, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, "http://registry.local", cfg.CatalogRegistryURL)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("RATE_LIMIT_RPS", "-3")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.InDelta(t, 50, cfg.RateLimitRPS, 1e-9)
}
