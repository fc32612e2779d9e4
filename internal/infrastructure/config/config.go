package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Storage backend names.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH"     envDefault:"data/tefanote.db"`
	RedisURL       string `env:"REDIS_URL"       envDefault:"redis://localhost:6379"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Assistant (optional - leave the key empty to disable)
	AssistantAPIKey  string `env:"ASSISTANT_API_KEY"  envDefault:""`
	AssistantBaseURL string `env:"ASSISTANT_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	AssistantModel   string `env:"ASSISTANT_MODEL"    envDefault:"gemini-2.0-flash"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.StorageBackend {
	case BackendSQLite, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// AssistantEnabled reports whether the chat feature is configured.
func (c *Config) AssistantEnabled() bool {
	return c.AssistantAPIKey != ""
}
