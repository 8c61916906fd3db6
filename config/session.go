package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SessionBackend selects where the session keys persist.
type SessionBackend string

const (
	// SessionBackendFile persists the session in a JSON state file under
	// the user's config directory. The durable default.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendMemory keeps the session for the process lifetime
	// only.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendRedis shares the session through a Redis instance,
	// for headless fleets and CI.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "memory", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, memory, redis)", v)
	}
}

// RedisConfig contains connection settings for the redis session backend.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"streamwave:session:"`
}

// SessionConfig contains session storage configuration.
type SessionConfig struct {
	// Backend selects the storage implementation.
	Backend SessionBackend `env:"BACKEND" envDefault:"file"`

	// StatePath is the state file location for the file backend. Empty
	// means a streamwave directory under the OS user config dir.
	StatePath string `env:"STATE_PATH"`

	// Redis settings (used when Backend=redis).
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.StatePath == "" {
		s.StatePath = defaultStatePath()
	}
}

func defaultStatePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "streamwave", "session.json")
}
