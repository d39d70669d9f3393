package server

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the HTTP-layer settings. The cleaning rule tables are fixed
// policy and deliberately not configurable.
type Config struct {
	Port           string
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	LogLevel       string
	EnableGzip     bool
}

// Defaults for every configurable value.
const (
	DefaultPort           = "8080"
	DefaultMaxUploadBytes = 20 << 20 // 20 MB, generous for a visitor sheet
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
	DefaultLogLevel       = "info"
)

// LoadConfig reads the configuration from environment variables, applying
// defaults for anything unset and validating the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("CLARITYGATE_PORT", DefaultPort),
		MaxUploadBytes: getEnvInt64("CLARITYGATE_MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		RateLimitRPS:   getEnvFloat("CLARITYGATE_RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvInt("CLARITYGATE_RATE_LIMIT_BURST", DefaultRateLimitBurst),
		LogLevel:       getEnv("CLARITYGATE_LOG_LEVEL", DefaultLogLevel),
		EnableGzip:     getEnvBool("CLARITYGATE_ENABLE_GZIP", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values for contradictions.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %f", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
