// Package calendar parses and validates the date inputs shared by the generators.
package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

// Supported year range for all date inputs.
const (
	MinYear = 1900
	MaxYear = 2100
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date as midnight UTC. field names the input
// in the returned validation error.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperr.Invalid(apperr.CodeInvalidDate, field, "expected YYYY-MM-DD, got %q", s)
	}
	if err := CheckYear(field, t.Year()); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// CheckYear validates that year is within the supported range.
func CheckYear(field string, year int) error {
	if year < MinYear || year > MaxYear {
		return apperr.Invalid(apperr.CodeInvalidDate, field, "year %d outside %d..%d", year, MinYear, MaxYear)
	}
	return nil
}

// ParseYearMonth parses year and month strings.
func ParseYearMonth(year, month string) (int, time.Month, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, 0, apperr.Invalid(apperr.CodeInvalidDate, "year", "year must be a number, got %q", year)
	}
	if err := CheckYear("year", y); err != nil {
		return 0, 0, err
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, apperr.Invalid(apperr.CodeInvalidDate, "month", "month must be 1..12, got %q", month)
	}
	return y, time.Month(m), nil
}

// Day truncates t to midnight UTC of its calendar day in t's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// WeekKey formats the ISO week of t as YYYY-Www.
func WeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return strconv.Itoa(y) + "-W" + pad2(w)
}

// MonthKey formats year and month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return strconv.Itoa(year) + "-" + pad2(int(month))
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
