// Package cache stores encoded payloads with a TTL.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ziadkadry99/zodiac/internal/config"
)

// Store is a byte cache. A miss is (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Open builds the store selected by cfg.Driver.
func Open(cfg config.CacheConfig) (Store, error) {
	switch cfg.Driver {
	case config.CacheMemory, "":
		return NewMemoryStore(), nil
	case config.CacheRedis:
		return NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), nil
	case config.CacheNone:
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// NopStore never holds anything.
type NopStore struct{}

func (NopStore) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NopStore) Delete(context.Context, string) error                     { return nil }
