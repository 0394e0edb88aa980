// Package config provides the server settings, all read from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	LogLevel     string // debug, info, warn, error
	LogFormat    string // json, text
	RateLimitRPS float64

	// CatalogRegistryURL optionally points at an effect-table registry
	// consulted once at startup. Empty means built-in tables only.
	CatalogRegistryURL string
}

// Default returns the settings used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "json",
		RateLimitRPS: 50,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset or unparsable.
func Load() *Config {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimitRPS = f
		}
	}
	cfg.CatalogRegistryURL = os.Getenv("CATALOG_REGISTRY_URL")

	return cfg
}
