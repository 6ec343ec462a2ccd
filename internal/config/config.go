package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore, e.g. ZODIAC_SERVER__PORT.
const EnvPrefix = "ZODIAC_"

// MinSecretLen is the shortest accepted auth.secret.
const MinSecretLen = 16

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ZODIAC_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps ZODIAC_RATE_LIMIT__LIMIT to rate_limit.limit.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validCacheDrivers = map[CacheDriver]bool{
	CacheMemory: true,
	CacheRedis:  true,
	CacheNone:   true,
}

var validEncodings = map[string]bool{
	"json":    true,
	"console": true,
}

// CronParser parses six-field specs with a leading seconds field.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if _, err := i18n.ParseLocale(c.DefaultLocale); err != nil {
		return fmt.Errorf("invalid default_locale %q", c.DefaultLocale)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1..65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must be non-negative")
	}

	if c.Log.Encoding != "" && !validEncodings[c.Log.Encoding] {
		return fmt.Errorf("invalid log.encoding %q: must be json or console", c.Log.Encoding)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if !validCacheDrivers[c.Cache.Driver] {
		return fmt.Errorf("invalid cache.driver %q: must be one of memory, redis, none", c.Cache.Driver)
	}
	if c.Cache.Driver == CacheRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required for the redis driver")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			return fmt.Errorf("rate_limit.limit must be positive")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive")
		}
	}

	if c.Auth.Secret != "" && len(c.Auth.Secret) < MinSecretLen {
		return fmt.Errorf("auth.secret must be at least %d characters", MinSecretLen)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}

	if c.Scheduler.Enabled {
		if _, err := CronParser.Parse(c.Scheduler.Warm); err != nil {
			return fmt.Errorf("invalid scheduler.warm %q: %w", c.Scheduler.Warm, err)
		}
	}

	if c.Export.MaxConcurrency < 0 {
		return fmt.Errorf("export.max_concurrency must be non-negative")
	}

	return nil
}

// Locale returns the configured default locale, falling back to English.
func (c *Config) Locale() i18n.Locale {
	loc, err := i18n.ParseLocale(c.DefaultLocale)
	if err != nil {
		return i18n.Default
	}
	return loc
}
