package config

import (
	"time"

	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".zodiac.yml"

// DefaultWarmSpec runs five seconds after midnight UTC.
const DefaultWarmSpec = "5 0 0 * * *"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLocale: string(i18n.Default),
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			RequestTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		Database: DatabaseConfig{
			Path: ".zodiac/zodiac.db",
		},
		Cache: CacheConfig{
			Driver:    CacheMemory,
			TTL:       24 * time.Hour,
			RedisAddr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Limit:   120,
			Window:  time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL: 365 * 24 * time.Hour,
		},
		Scheduler: SchedulerConfig{
			Enabled: true,
			Warm:    DefaultWarmSpec,
		},
		Export: ExportConfig{
			OutputDir:      "dist",
			MaxConcurrency: 8,
		},
	}
}
