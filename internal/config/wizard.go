package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to zodiac! Let's configure your server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Default locale.
	locales := make([]string, len(i18n.Supported))
	for i, l := range i18n.Supported {
		locales[i] = string(l)
	}
	localePrompt := promptui.Select{
		Label: "Default locale",
		Items: locales,
	}
	_, cfg.DefaultLocale, err = localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale selection: %w", err)
	}

	// 3. Cache driver.
	cachePrompt := promptui.Select{
		Label: "Reading cache",
		Items: []string{
			"memory: in-process, lost on restart",
			"redis:  shared between instances",
			"none:   compute every request",
		},
	}
	cacheIdx, _, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache selection: %w", err)
	}
	cfg.Cache.Driver = []CacheDriver{CacheMemory, CacheRedis, CacheNone}[cacheIdx]

	if cfg.Cache.Driver == CacheRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: cfg.Cache.RedisAddr,
		}
		cfg.Cache.RedisAddr, err = redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
	}

	// 4. Token secret.
	secret, err := GenerateSecret()
	if err != nil {
		return nil, err
	}
	cfg.Auth.Secret = secret

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// GenerateSecret returns a random 32-byte hex string for auth.secret.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port must be a number within 1..65535")
	}
	return nil
}
