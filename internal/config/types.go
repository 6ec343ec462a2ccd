package config

import "time"

// CacheDriver selects the horoscope payload cache backend.
type CacheDriver string

const (
	CacheMemory CacheDriver = "memory"
	CacheRedis  CacheDriver = "redis"
	CacheNone   CacheDriver = "none"
)

// Config is the top-level zodiac configuration, corresponding to .zodiac.yml.
type Config struct {
	DefaultLocale string          `yaml:"default_locale" koanf:"default_locale"`
	Server        ServerConfig    `yaml:"server" koanf:"server"`
	Log           LogConfig       `yaml:"log" koanf:"log"`
	Database      DatabaseConfig  `yaml:"database" koanf:"database"`
	Cache         CacheConfig     `yaml:"cache" koanf:"cache"`
	RateLimit     RateLimitConfig `yaml:"rate_limit" koanf:"rate_limit"`
	Auth          AuthConfig      `yaml:"auth" koanf:"auth"`
	Scheduler     SchedulerConfig `yaml:"scheduler" koanf:"scheduler"`
	Export        ExportConfig    `yaml:"export" koanf:"export"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int           `yaml:"port" koanf:"port"`
	AllowAll       bool          `yaml:"cors_allow_all" koanf:"cors_allow_all"`
	AllowedOrigins []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level             string `yaml:"level" koanf:"level"`
	Encoding          string `yaml:"encoding" koanf:"encoding"`
	Development       bool   `yaml:"development" koanf:"development"`
	Sampling          bool   `yaml:"sampling" koanf:"sampling"`
	DisableCaller     bool   `yaml:"disable_caller" koanf:"disable_caller"`
	DisableStacktrace bool   `yaml:"disable_stacktrace" koanf:"disable_stacktrace"`
}

// DatabaseConfig points at the SQLite profile store.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// CacheConfig selects and configures the payload cache.
type CacheConfig struct {
	Driver        CacheDriver   `yaml:"driver" koanf:"driver"`
	TTL           time.Duration `yaml:"ttl" koanf:"ttl"`
	RedisAddr     string        `yaml:"redis_addr" koanf:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" koanf:"redis_password"`
	RedisDB       int           `yaml:"redis_db" koanf:"redis_db"`
}

// RateLimitConfig is a fixed window of Limit requests per Window per client IP.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" koanf:"enabled"`
	Limit   int           `yaml:"limit" koanf:"limit"`
	Window  time.Duration `yaml:"window" koanf:"window"`
}

// AuthConfig signs anonymous client tokens.
type AuthConfig struct {
	Secret   string        `yaml:"secret" koanf:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl" koanf:"token_ttl"`
}

// SchedulerConfig controls the cache warm job.
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Warm    string `yaml:"warm" koanf:"warm"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	OutputDir      string `yaml:"output_dir" koanf:"output_dir"`
	MaxConcurrency int    `yaml:"max_concurrency" koanf:"max_concurrency"`
}
