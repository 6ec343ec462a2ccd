package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/zodiac/internal/config"
)

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, s.Set(ctx, "forever", []byte("2"), 0))

	b, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), b)

	now = now.Add(2 * time.Minute)
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "forever")
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, "forever"))
	_, ok, _ = s.Get(ctx, "forever")
	assert.False(t, ok)
}

func TestMemoryStoreSweepsOnSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	for i := 0; i < 500; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("daily:aries:%d", i), []byte("x"), time.Minute))
	}
	require.NoError(t, s.Set(ctx, "forever", []byte("y"), 0))
	assert.Equal(t, 501, s.Len())

	// Within the sweep interval nothing is reclaimed yet.
	now = now.Add(30 * time.Second)
	require.NoError(t, s.Set(ctx, "early", []byte("z"), time.Minute))
	assert.Equal(t, 502, s.Len())

	now = now.Add(48 * time.Hour)
	require.NoError(t, s.Set(ctx, "fresh", []byte("z"), time.Minute))
	assert.Equal(t, 2, s.Len())
	_, ok, _ := s.Get(ctx, "forever")
	assert.True(t, ok)
	_, ok, _ = s.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v, 0))
	v[0] = 'x'
	got, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	calls := 0
	fn := func() (any, error) {
		calls++
		return map[string]int{"n": calls}, nil
	}

	a, err := Remember(ctx, s, "k", time.Hour, fn)
	require.NoError(t, err)
	b, err := Remember(ctx, s, "k", time.Hour, fn)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.JSONEq(t, `{"n":1}`, string(a))
	assert.Equal(t, a, b)

	_, err = Remember(ctx, s, "bad", time.Hour, func() (any, error) { return nil, errors.New("boom") })
	assert.EqualError(t, err, "boom")
	_, ok, _ := s.Get(ctx, "bad")
	assert.False(t, ok)
}

func TestRememberNop(t *testing.T) {
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := Remember(context.Background(), NopStore{}, "k", time.Hour, func() (any, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestHoroscopeKey(t *testing.T) {
	assert.Equal(t, "horoscope:daily:aries:2026-10-14:es", HoroscopeKey("daily", "aries", "2026-10-14", "es"))
}

func TestOpen(t *testing.T) {
	s, err := Open(config.CacheConfig{Driver: config.CacheMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(config.CacheConfig{Driver: config.CacheNone})
	require.NoError(t, err)
	assert.IsType(t, NopStore{}, s)

	s, err = Open(config.CacheConfig{Driver: config.CacheRedis, RedisAddr: "localhost:6379"})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	_ = s.(*RedisStore).Close()

	_, err = Open(config.CacheConfig{Driver: "memcached"})
	assert.Error(t, err)
}

// TestRedisStore runs against a live server when ZODIAC_TEST_REDIS_ADDR is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("ZODIAC_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ZODIAC_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := NewRedisStore(&redis.Options{Addr: addr})
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	key := "zodiac:test:" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, s.Set(ctx, key, []byte("v"), time.Minute))
	b, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), b)

	require.NoError(t, s.Delete(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
