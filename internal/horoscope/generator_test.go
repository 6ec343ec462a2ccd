package horoscope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

func mustSign(t *testing.T, id string) zodiac.Sign {
	t.Helper()
	s, ok := zodiac.Get(id)
	require.True(t, ok, id)
	return s
}

func TestDailyIsDeterministic(t *testing.T) {
	g := NewGenerator()
	leo := mustSign(t, "leo")
	date := time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

	a, err := g.Daily(leo, date, i18n.English)
	require.NoError(t, err)
	b, err := g.Daily(leo, date.Add(10*time.Hour), i18n.English)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "2026-10-14", a.Key)
	assert.Equal(t, Daily, a.Period)
}

func TestScoresDoNotDependOnLocale(t *testing.T) {
	g := NewGenerator()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, sign := range zodiac.All() {
		en, err := g.Daily(sign, date, i18n.English)
		require.NoError(t, err)
		for _, loc := range i18n.Supported[1:] {
			other, err := g.Daily(sign, date, loc)
			require.NoError(t, err)
			assert.Equal(t, en.Overall, other.Overall)
			assert.Equal(t, en.LuckyNumber, other.LuckyNumber)
			assert.Equal(t, en.LuckyTime, other.LuckyTime)
			for _, c := range Categories {
				assert.Equal(t, en.Score(c), other.Score(c), "%s %s %s", sign.ID, loc, c)
			}
			assert.Equal(t, loc, other.Locale)
		}
	}
}

func TestValuesInRange(t *testing.T) {
	g := NewGenerator()
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		for _, sign := range zodiac.All() {
			r, err := g.Daily(sign, day, i18n.Spanish)
			require.NoError(t, err)
			require.Len(t, r.Categories, len(Categories))
			for _, c := range r.Categories {
				assert.GreaterOrEqual(t, c.Score, MinScore)
				assert.LessOrEqual(t, c.Score, MaxScore)
				assert.NotEmpty(t, c.Text)
				assert.NotContains(t, c.Text, "{sign}")
			}
			assert.GreaterOrEqual(t, r.Overall, MinScore)
			assert.LessOrEqual(t, r.Overall, MaxScore)
			assert.GreaterOrEqual(t, r.LuckyNumber, 1)
			assert.LessOrEqual(t, r.LuckyNumber, 99)
			assert.Regexp(t, `^([01][0-9]|2[0-3]):00$`, r.LuckyTime)
			assert.NotEmpty(t, r.LuckyColor)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestDifferentDaysVary(t *testing.T) {
	g := NewGenerator()
	aries := mustSign(t, "aries")
	seen := map[int]bool{}
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		r, err := g.Daily(aries, day.AddDate(0, 0, i), i18n.English)
		require.NoError(t, err)
		seen[r.LuckyNumber] = true
	}
	assert.Greater(t, len(seen), 5, "lucky numbers should vary across days")
}

func TestLocalizedText(t *testing.T) {
	g := NewGenerator()
	r, err := g.Daily(mustSign(t, "pisces"), time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), i18n.German)
	require.NoError(t, err)
	assert.Equal(t, "Fische", r.SignName)
	assert.Equal(t, "Liebe", r.Categories[0].Label)
	assert.Contains(t, r.Intro, "Fische")
}

func TestWeekly(t *testing.T) {
	g := NewGenerator()
	virgo := mustSign(t, "virgo")

	wed, err := g.Weekly(virgo, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), i18n.English)
	require.NoError(t, err)
	sun, err := g.Weekly(virgo, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), i18n.English)
	require.NoError(t, err)

	assert.Equal(t, wed, sun, "every day of an ISO week yields the same reading")
	assert.Equal(t, "2026-W42", wed.Key)
	assert.Equal(t, "2026-10-12", wed.Start)
	assert.Equal(t, "2026-10-18", wed.End)
	assert.Contains(t, i18n.Messages().List(i18n.English, "weekdays"), wed.BestDay)
}

func TestMonthly(t *testing.T) {
	g := NewGenerator()
	r, err := g.Monthly(mustSign(t, "cancer"), 2024, time.February, i18n.Portuguese)
	require.NoError(t, err)

	assert.Equal(t, "2024-02", r.Key)
	assert.Equal(t, "2024-02-01", r.Start)
	assert.Equal(t, "2024-02-29", r.End)
	require.Len(t, r.KeyDates, 3)
	for i, d := range r.KeyDates {
		assert.True(t, d >= r.Start && d <= r.End, d)
		if i > 0 {
			assert.Less(t, r.KeyDates[i-1], d)
		}
	}
}

func TestPeriodsUseIndependentSeeds(t *testing.T) {
	g := NewGenerator()
	s := mustSign(t, "libra")
	daily, _ := g.Daily(s, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), i18n.English)
	monthly, _ := g.Monthly(s, 2026, time.October, i18n.English)
	assert.NotEqual(t, daily.Key, monthly.Key)
	assert.Equal(t, Monthly, monthly.Period)
}

func TestValidation(t *testing.T) {
	g := NewGenerator()
	s := mustSign(t, "taurus")

	_, err := g.Daily(s, time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC), i18n.English)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidDate))

	_, err = g.Monthly(s, 2026, time.Month(13), i18n.English)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidDate))

	_, err = g.Monthly(s, 2200, time.January, i18n.English)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidDate))
}

func TestStreamBounds(t *testing.T) {
	s := newStream("x")
	for i := 0; i < 1000; i++ {
		v := s.between(3, 7)
		assert.True(t, v >= 3 && v <= 7)
	}
	assert.Equal(t, 0, s.intn(0))
	assert.Equal(t, newStream("a", "b").next(), newStream("a", "b").next())
	assert.NotEqual(t, newStream("a", "b").next(), newStream("ab").next())
}

func TestTier(t *testing.T) {
	assert.Equal(t, "low", tier(1))
	assert.Equal(t, "low", tier(2))
	assert.Equal(t, "mid", tier(3))
	assert.Equal(t, "high", tier(4))
	assert.Equal(t, "high", tier(5))
}
