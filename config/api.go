package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API configuration.
type APIConfig struct {
	// BaseURL is the StreamWave backend origin. All endpoint paths are
	// resolved against it.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every request; expired requests fail as network
	// errors and are never retried automatically.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// UserAgent identifies this client to the backend.
	UserAgent string `env:"USER_AGENT" envDefault:"streamwave-go"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
	if strings.TrimSpace(a.UserAgent) == "" {
		a.UserAgent = "streamwave-go"
	}
}
