// Package horoscope generates deterministic daily, weekly and monthly readings.
//
// A reading is a pure function of the sign and the period key: the same sign on
// the same day always gets the same scores, lucky values and template choices,
// whatever the locale. The locale only selects the language of the text.
package horoscope

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Generator builds readings from the message catalogs.
type Generator struct {
	msgs *i18n.Bundle
}

// NewGenerator creates a Generator over the embedded catalogs.
func NewGenerator() *Generator {
	return &Generator{msgs: i18n.Messages()}
}

// Daily returns the reading for the calendar day of date.
func (g *Generator) Daily(sign zodiac.Sign, date time.Time, loc i18n.Locale) (*Reading, error) {
	if err := calendar.CheckYear("date", date.Year()); err != nil {
		return nil, err
	}
	day := calendar.Day(date)
	key := day.Format(calendar.DateLayout)
	r, _ := g.base(sign, Daily, key, loc)
	r.Start, r.End = key, key
	return r, nil
}

// Weekly returns the reading for the ISO week containing date.
func (g *Generator) Weekly(sign zodiac.Sign, date time.Time, loc i18n.Locale) (*Reading, error) {
	if err := calendar.CheckYear("date", date.Year()); err != nil {
		return nil, err
	}
	start, end := calendar.WeekBounds(date)
	r, s := g.base(sign, Weekly, calendar.WeekKey(date), loc)
	r.Start = start.Format(calendar.DateLayout)
	r.End = end.Format(calendar.DateLayout)
	r.BestDay = g.msgs.Pick(loc, "weekdays", s.intn(7))
	return r, nil
}

// Monthly returns the reading for the given month.
func (g *Generator) Monthly(sign zodiac.Sign, year int, month time.Month, loc i18n.Locale) (*Reading, error) {
	if err := calendar.CheckYear("year", year); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, apperr.Invalid(apperr.CodeInvalidDate, "month", "month must be 1..12, got %d", month)
	}
	r, s := g.base(sign, Monthly, calendar.MonthKey(year, month), loc)
	days := calendar.DaysIn(year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	r.Start = first.Format(calendar.DateLayout)
	r.End = first.AddDate(0, 0, days-1).Format(calendar.DateLayout)
	r.KeyDates = keyDates(s, first, days, 3)
	return r, nil
}

// base fills the fields shared by every period and returns the stream so the
// caller can draw period-specific values after the shared ones.
func (g *Generator) base(sign zodiac.Sign, period Period, key string, loc i18n.Locale) (*Reading, *stream) {
	s := newStream(string(period), key, sign.ID)
	name := sign.Name(loc)
	vars := map[string]string{"sign": name, "period": key}

	r := &Reading{
		Sign:     sign.ID,
		SignName: name,
		Period:   period,
		Key:      key,
		Locale:   loc,
		Intro:    i18n.Format(g.msgs.Text(loc, "intro."+string(period)), vars),
	}

	total := 0
	for _, c := range Categories {
		score := s.between(MinScore, MaxScore)
		variant := s.intn(1 << 16)
		tmpl := g.msgs.Pick(loc, "templates."+string(c)+"."+tier(score), variant)
		r.Categories = append(r.Categories, CategoryReading{
			Category: c,
			Label:    g.msgs.Text(loc, "categories."+string(c)),
			Score:    score,
			Text:     i18n.Format(tmpl, vars),
		})
		total += score
	}
	r.Overall = int(math.Round(float64(total) / float64(len(Categories))))
	r.Summary = g.msgs.Text(loc, "overall."+strconv.Itoa(r.Overall))

	r.LuckyNumber = s.between(1, 99)
	r.LuckyColor = g.msgs.Pick(loc, "colors", s.intn(g.msgs.Len("colors")))
	r.LuckyTime = fmt.Sprintf("%02d:00", s.intn(24))
	return r, s
}

func tier(score int) string {
	switch {
	case score <= 2:
		return "low"
	case score == 3:
		return "mid"
	default:
		return "high"
	}
}

// keyDates draws n distinct days of the month, sorted ascending.
func keyDates(s *stream, first time.Time, days, n int) []string {
	if n > days {
		n = days
	}
	picked := make(map[int]bool, n)
	for len(picked) < n {
		picked[s.intn(days)] = true
	}
	offsets := make([]int, 0, n)
	for d := range picked {
		offsets = append(offsets, d)
	}
	sort.Ints(offsets)
	out := make([]string, len(offsets))
	for i, d := range offsets {
		out[i] = first.AddDate(0, 0, d).Format(calendar.DateLayout)
	}
	return out
}
