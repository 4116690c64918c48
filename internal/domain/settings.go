package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Settings is the server connection configuration. It is a plain value:
// copy it freely, and construct a new one to change it.
type Settings struct {
	URL        string
	MaxRecords int
	MaxDays    int
}

// Validate reports whether s is a complete, usable settings record.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("server URL is required")
	}
	u, err := url.Parse(s.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server URL %q must be an absolute http(s) URL", s.URL)
	}
	if s.MaxRecords <= 0 {
		return fmt.Errorf("max records must be positive, got %d", s.MaxRecords)
	}
	if s.MaxDays < 0 {
		return fmt.Errorf("max days must not be negative, got %d", s.MaxDays)
	}
	return nil
}
