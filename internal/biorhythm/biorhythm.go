// Package biorhythm computes the classic three-cycle biorhythm chart.
package biorhythm

import (
	"math"
	"time"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/calendar"
)

// Cycle names one of the rhythms.
type Cycle string

const (
	Physical     Cycle = "physical"
	Emotional    Cycle = "emotional"
	Intellectual Cycle = "intellectual"
)

// Periods in days.
var Periods = map[Cycle]int{
	Physical:     23,
	Emotional:    28,
	Intellectual: 33,
}

// Cycles lists the rhythms in output order.
var Cycles = []Cycle{Physical, Emotional, Intellectual}

// Phase describes where a cycle is heading.
type Phase string

const (
	Rising  Phase = "rising"
	Falling Phase = "falling"
	Peak    Phase = "peak"
	Trough  Phase = "trough"
)

// MaxSeriesDays bounds Series.
const MaxSeriesDays = 90

// Value is one cycle on one day.
type Value struct {
	Cycle    Cycle `json:"cycle"`
	Value    int   `json:"value"`
	Phase    Phase `json:"phase"`
	Critical bool  `json:"critical"`
}

// Reading is the three cycles on one day.
type Reading struct {
	Date   string  `json:"date"`
	Days   int     `json:"days_since_birth"`
	Values []Value `json:"values"`
}

// Get returns the value for c.
func (r Reading) Get(c Cycle) Value {
	for _, v := range r.Values {
		if v.Cycle == c {
			return v
		}
	}
	return Value{}
}

// Calculate returns the biorhythm on target for someone born on birth.
func Calculate(birth, target time.Time) (Reading, error) {
	days := calendar.DaysBetween(birth, target)
	if days < 0 {
		return Reading{}, apperr.Invalid(apperr.CodeInvalidDate, "date", "date is before birth")
	}
	r := Reading{
		Date: calendar.Day(target).Format(calendar.DateLayout),
		Days: days,
	}
	for _, c := range Cycles {
		r.Values = append(r.Values, at(c, days))
	}
	return r, nil
}

// Series returns n consecutive readings starting at from.
func Series(birth, from time.Time, n int) ([]Reading, error) {
	if n < 1 || n > MaxSeriesDays {
		return nil, apperr.Invalid(apperr.CodeInvalidParam, "days", "days must be 1..%d", MaxSeriesDays)
	}
	out := make([]Reading, 0, n)
	for i := 0; i < n; i++ {
		r, err := Calculate(birth, from.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func at(c Cycle, days int) Value {
	p := float64(Periods[c])
	angle := 2 * math.Pi * float64(days) / p
	sin := math.Sin(angle)
	next := math.Sin(2 * math.Pi * float64(days+1) / p)
	prev := math.Sin(2 * math.Pi * float64(days-1) / p)

	v := Value{
		Cycle:    c,
		Value:    int(math.Round(sin * 100)),
		Critical: math.Abs(sin) < math.Sin(math.Pi/p),
	}
	switch {
	case sin >= prev && sin >= next:
		v.Phase = Peak
	case sin <= prev && sin <= next:
		v.Phase = Trough
	case next > sin:
		v.Phase = Rising
	default:
		v.Phase = Falling
	}
	return v
}
