// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration of the matcher service.
type Config struct {
	// Port the HTTP server listens on.
	Port int
	// DatabaseURL selects the PostgreSQL store when non-empty; the
	// in-memory store is used otherwise.
	DatabaseURL string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
	// LogPretty switches from JSON to human-readable console output.
	LogPretty bool
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvBool("LOG_PRETTY", false),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", raw)
		}
		cfg.Port = port
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
