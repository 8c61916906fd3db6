package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - api.go: backend API configuration
//   - session.go: session storage configuration
type AppConfig struct {
	// LogLevel selects the slog level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat selects the slog handler: json or text.
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Backend API configuration
	API APIConfig `envPrefix:"STREAMWAVE_"`

	// Session storage configuration
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()

	switch c.LogFormat {
	case "json", "text":
	default:
		c.LogFormat = "json"
	}
}
