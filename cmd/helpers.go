package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/api"
	"github.com/ziadkadry99/zodiac/internal/cache"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/config"
	"github.com/ziadkadry99/zodiac/internal/content"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `zodiac init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setupLogger builds the zap logger from cfg and installs it as the global.
func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// newService builds the reading service with store as its payload cache.
func newService(cfg *config.Config, store cache.Store) (*api.Service, error) {
	lib, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("loading sign content: %w", err)
	}
	return api.NewService(store, cfg.Cache.TTL, lib, cfg.Locale()), nil
}

// localeFlag resolves --locale, defaulting to the configured locale.
func localeFlag(cfg *config.Config, v string) (i18n.Locale, error) {
	if v == "" {
		return cfg.Locale(), nil
	}
	return i18n.ParseLocale(v)
}

// dateFlag parses --date, defaulting to today in UTC.
func dateFlag(field, v string) (time.Time, error) {
	if v == "" {
		return calendar.Day(time.Now().UTC()), nil
	}
	return calendar.ParseDate(field, v)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// stars renders a 1..5 score.
func stars(score int) string {
	s := ""
	for i := 1; i <= 5; i++ {
		if i <= score {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
