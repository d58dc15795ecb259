package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	StaleTimeout   time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// Load reads the process environment, falling back to development defaults.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		StaleTimeout:   10 * time.Second,
		RatePerSecond:  20,
		RateBurst:      40,
	}

	if raw, ok := os.LookupEnv("STALE_TIMEOUT_SECONDS"); ok {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.StaleTimeout = time.Duration(secs) * time.Second
		}
	}
	if raw, ok := os.LookupEnv("RATE_PER_SECOND"); ok {
		if rps, err := strconv.ParseFloat(raw, 64); err == nil && rps > 0 {
			cfg.RatePerSecond = rps
		}
	}
	if raw, ok := os.LookupEnv("RATE_BURST"); ok {
		if burst, err := strconv.Atoi(raw); err == nil && burst > 0 {
			cfg.RateBurst = burst
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
