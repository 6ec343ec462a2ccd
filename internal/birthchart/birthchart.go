// Package birthchart computes a simplified Sun/Moon/Rising chart.
//
// The Sun comes from the tropical date ranges, the Moon from the mean lunar
// longitude, and the Rising sign from two-hour buckets of local solar time
// starting at sunrise. It is a bucket lookup, not an ephemeris.
package birthchart

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones must resolve on hosts without zoneinfo

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Mean lunar longitude at J2000.0 and its daily motion, in degrees.
const (
	moonEpochLongitude = 218.316
	moonDailyMotion    = 13.176396
)

var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

var (
	offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)
	clockPattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Input is a birth moment and place.
type Input struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  string   `json:"timezone"`
}

// Placement is one of the Big Three.
type Placement struct {
	Sign    string         `json:"sign"`
	Name    string         `json:"name"`
	Symbol  string         `json:"symbol"`
	Element zodiac.Element `json:"element"`
}

// Result is a computed chart.
type Result struct {
	Sun           Placement              `json:"sun"`
	Moon          Placement              `json:"moon"`
	Rising        Placement              `json:"rising"`
	MoonLongitude float64                `json:"moon_longitude"`
	SolarTime     string                 `json:"solar_time"`
	UTC           string                 `json:"utc"`
	Elements      map[zodiac.Element]int `json:"elements"`
}

// Calculate validates in and computes the chart with names in loc.
func Calculate(in Input, loc i18n.Locale) (*Result, error) {
	lon, err := coordinates(in)
	if err != nil {
		return nil, err
	}
	day, err := calendar.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	hour, minute, err := parseClock(in.Time)
	if err != nil {
		return nil, err
	}
	zone, err := resolveZone(in.Timezone, lon)
	if err != nil {
		return nil, err
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, zone)
	utc := local.UTC()

	sun := zodiac.ForDate(local.Month(), local.Day())

	moonLon := MoonLongitude(utc)
	moon := zodiac.At(int(moonLon / 30))

	solar := SolarHour(utc, lon)
	rising := zodiac.At(sun.Index() + int(mod(solar-6, 24)/2))

	r := &Result{
		Sun:           placement(sun, loc),
		Moon:          placement(moon, loc),
		Rising:        placement(rising, loc),
		MoonLongitude: math.Round(moonLon*100) / 100,
		SolarTime:     clock(solar),
		UTC:           utc.Format(time.RFC3339),
		Elements:      map[zodiac.Element]int{},
	}
	for _, s := range []zodiac.Sign{sun, moon, rising} {
		r.Elements[s.Element]++
	}
	return r, nil
}

// MoonLongitude returns the mean ecliptic longitude of the Moon at t, 0..360.
func MoonLongitude(t time.Time) float64 {
	days := t.UTC().Sub(j2000).Hours() / 24
	return mod(moonEpochLongitude+moonDailyMotion*days, 360)
}

// SolarHour returns local mean solar time in fractional hours, 0..24.
func SolarHour(t time.Time, longitude float64) float64 {
	u := t.UTC()
	h := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	return mod(h+longitude/15, 24)
}

// coordinates validates both coordinates and returns the longitude. Latitude
// does not move any of the buckets but must still be a real place.
func coordinates(in Input) (float64, error) {
	if in.Latitude == nil {
		return 0, apperr.Invalid(apperr.CodeInvalidLatitude, "latitude", "latitude is required")
	}
	if in.Longitude == nil {
		return 0, apperr.Invalid(apperr.CodeInvalidLongitude, "longitude", "longitude is required")
	}
	lat, lon := *in.Latitude, *in.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, apperr.Invalid(apperr.CodeInvalidLatitude, "latitude", "latitude must be within -90..90")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, apperr.Invalid(apperr.CodeInvalidLongitude, "longitude", "longitude must be within -180..180")
	}
	return lon, nil
}

func parseClock(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if !clockPattern.MatchString(s) {
		return 0, 0, apperr.Invalid(apperr.CodeInvalidTime, "time", "expected HH:MM (24h), got %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, apperr.Invalid(apperr.CodeInvalidTime, "time", "expected HH:MM (24h), got %q", s)
	}
	return t.Hour(), t.Minute(), nil
}

// resolveZone accepts an IANA zone, a ±HH:MM offset, or nothing, in which
// case the offset is derived from longitude at 15 degrees per hour.
func resolveZone(tz string, longitude float64) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		hours := int(math.Round(longitude / 15))
		return time.FixedZone(fmt.Sprintf("LMT%+d", hours), hours*3600), nil
	}
	if m := offsetPattern.FindStringSubmatch(tz); m != nil {
		h, _ := strconv.Atoi(m[2])
		mins, _ := strconv.Atoi(m[3])
		// Offsets stop at ±14:00.
		if h > 14 || mins > 59 || (h == 14 && mins > 0) {
			return nil, apperr.Invalid(apperr.CodeInvalidTimezone, "timezone", "offset %q out of range", tz)
		}
		secs := h*3600 + mins*60
		if m[1] == "-" {
			secs = -secs
		}
		return time.FixedZone(tz, secs), nil
	}
	if strings.EqualFold(tz, "local") {
		return nil, apperr.Invalid(apperr.CodeInvalidTimezone, "timezone", "timezone must be explicit")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, apperr.Invalid(apperr.CodeInvalidTimezone, "timezone", "unknown timezone %q", tz)
	}
	return loc, nil
}

func placement(s zodiac.Sign, loc i18n.Locale) Placement {
	return Placement{Sign: s.ID, Name: s.Name(loc), Symbol: s.Symbol, Element: s.Element}
}

func clock(hours float64) string {
	total := int(math.Round(hours*60)) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
