// Package api serves the public reading endpoints.
package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/cache"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/content"
	"github.com/ziadkadry99/zodiac/internal/horoscope"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Cache-Control values per period.
const (
	DailyCacheControl   = "public, max-age=3600, stale-while-revalidate=86400"
	WeeklyCacheControl  = "public, max-age=21600, stale-while-revalidate=86400"
	MonthlyCacheControl = "public, max-age=86400, stale-while-revalidate=86400"
)

// Service holds what the handlers need.
type Service struct {
	Generator     *horoscope.Generator
	Cache         cache.Store
	CacheTTL      time.Duration
	Content       *content.Library
	DefaultLocale i18n.Locale

	now func() time.Time
}

// NewService wires a service. A nil store disables payload caching.
func NewService(store cache.Store, ttl time.Duration, lib *content.Library, def i18n.Locale) *Service {
	if store == nil {
		store = cache.NopStore{}
	}
	if !def.Valid() {
		def = i18n.Default
	}
	return &Service{
		Generator:     horoscope.NewGenerator(),
		Cache:         store,
		CacheTTL:      ttl,
		Content:       lib,
		DefaultLocale: def,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Daily returns the encoded daily reading, cached by sign, day and locale.
func (s *Service) Daily(ctx context.Context, sign zodiac.Sign, date time.Time, loc i18n.Locale) ([]byte, error) {
	key := cache.HoroscopeKey(string(horoscope.Daily), sign.ID, calendar.Day(date).Format(calendar.DateLayout), string(loc))
	return cache.Remember(ctx, s.Cache, key, s.CacheTTL, func() (any, error) {
		return s.Generator.Daily(sign, date, loc)
	})
}

// Weekly returns the encoded reading for the ISO week of date.
func (s *Service) Weekly(ctx context.Context, sign zodiac.Sign, date time.Time, loc i18n.Locale) ([]byte, error) {
	key := cache.HoroscopeKey(string(horoscope.Weekly), sign.ID, calendar.WeekKey(date), string(loc))
	return cache.Remember(ctx, s.Cache, key, s.CacheTTL, func() (any, error) {
		return s.Generator.Weekly(sign, date, loc)
	})
}

// Monthly returns the encoded reading for year and month.
func (s *Service) Monthly(ctx context.Context, sign zodiac.Sign, year int, month time.Month, loc i18n.Locale) ([]byte, error) {
	key := cache.HoroscopeKey(string(horoscope.Monthly), sign.ID, calendar.MonthKey(year, month), string(loc))
	return cache.Remember(ctx, s.Cache, key, s.CacheTTL, func() (any, error) {
		return s.Generator.Monthly(sign, year, month, loc)
	})
}

// Warm computes the daily reading of every sign in every locale for day.
func (s *Service) Warm(ctx context.Context, day time.Time) (int, error) {
	n := 0
	for _, loc := range i18n.Supported {
		for _, sign := range zodiac.All() {
			if err := ctx.Err(); err != nil {
				return n, err
			}
			if _, err := s.Daily(ctx, sign, day, loc); err != nil {
				return n, fmt.Errorf("warming %s/%s: %w", loc, sign.ID, err)
			}
			n++
		}
	}
	zap.L().Info("cache warmed",
		zap.String("date", calendar.Day(day).Format(calendar.DateLayout)),
		zap.Int("readings", n),
	)
	return n, nil
}

// today returns the current UTC date at midnight.
func (s *Service) today() time.Time {
	return calendar.Day(s.now())
}

// yearMonth fills missing query values from the current month.
func (s *Service) yearMonth(year, month string) (int, time.Month, error) {
	now := s.now()
	if year == "" {
		year = strconv.Itoa(now.Year())
	}
	if month == "" {
		month = strconv.Itoa(int(now.Month()))
	}
	return calendar.ParseYearMonth(year, month)
}
