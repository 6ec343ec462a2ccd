package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Key joins parts with ':' into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// HoroscopeKey is the key for a reading payload.
func HoroscopeKey(period, sign, periodKey, locale string) string {
	return Key("horoscope", period, sign, periodKey, locale)
}

// Remember returns the cached payload for key, or computes it with fn, encodes
// it as JSON and stores it. A failing store is logged and bypassed.
func Remember(ctx context.Context, s Store, key string, ttl time.Duration, fn func() (any, error)) ([]byte, error) {
	if b, ok, err := s.Get(ctx, key); err != nil {
		zap.L().Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return b, nil
	}

	v, err := fn()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	b = append(b, '\n')
	if err := s.Set(ctx, key, b, ttl); err != nil {
		zap.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return b, nil
}
