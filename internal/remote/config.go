package remote

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// Config holds everything the HTTP client needs. BaseURL and Limit come
// from the effective settings; the rest from the environment.
type Config struct {
	BaseURL    string
	Limit      int
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible transport defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8080",
		Limit:      100,
		TimeoutMs:  5000,
		MaxRetries: 0,
	}
}

// LoadConfig builds a Config from settings, then applies environment
// overrides for transport options.
func LoadConfig(s domain.Settings) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = strings.TrimRight(s.URL, "/")
	cfg.Limit = s.MaxRecords

	if v := os.Getenv("TRAININGTASK_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRAININGTASK_HTTP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("TRAININGTASK_HTTP_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}
