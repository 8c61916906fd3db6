package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "streamwave-go", cfg.API.UserAgent)
	assert.Equal(t, SessionBackendFile, cfg.Session.Backend)
	assert.NotEmpty(t, cfg.Session.StatePath)
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, "streamwave:session:", cfg.Session.Redis.Prefix)
}

func TestAppConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("STREAMWAVE_API_URL", "https://api.streamwave.example/")
	t.Setenv("STREAMWAVE_API_TIMEOUT", "10s")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SESSION_REDIS_DB", "2")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	// Trailing slash is trimmed so path joining stays predictable.
	assert.Equal(t, "https://api.streamwave.example", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Session.Redis.Addr)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		LogFormat: "yaml",
		API:       APIConfig{BaseURL: "  http://localhost:5000/  ", Timeout: -1},
	}
	cfg.Sanitize()

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "streamwave-go", cfg.API.UserAgent)
	assert.Equal(t, SessionBackendFile, cfg.Session.Backend)
}

func TestSessionBackend_UnmarshalText(t *testing.T) {
	var b SessionBackend
	require.NoError(t, b.UnmarshalText([]byte("REDIS")))
	assert.Equal(t, SessionBackendRedis, b)

	err := b.UnmarshalText([]byte("postgres"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SessionBackend")
}

func TestSessionBackend_InvalidFromEnv(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "cookie")

	var cfg AppConfig
	require.Error(t, env.Parse(&cfg))
}
