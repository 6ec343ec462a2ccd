// Package zodiac contains the immutable table of the twelve tropical signs.
package zodiac

import (
	"strings"
	"time"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// Element is one of the four classical sign groupings.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Modality describes how a sign expresses its element.
type Modality string

const (
	Cardinal Modality = "cardinal"
	Fixed    Modality = "fixed"
	Mutable  Modality = "mutable"
)

// MonthDay is a calendar day without a year.
type MonthDay struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// Sign is a zodiac sign.
type Sign struct {
	ID       string                 `json:"id"`
	Symbol   string                 `json:"symbol"`
	Names    map[i18n.Locale]string `json:"names"`
	Start    MonthDay               `json:"start"`
	End      MonthDay               `json:"end"`
	Element  Element                `json:"element"`
	Modality Modality               `json:"modality"`
	Ruler    string                 `json:"ruling_planet"`
	index    int
}

// Index is the sign's position in the zodiac, 0 for Aries through 11 for Pisces.
func (s Sign) Index() int { return s.index }

// Name returns the localized name, falling back to English.
func (s Sign) Name(loc i18n.Locale) string {
	if n, ok := s.Names[loc]; ok {
		return n
	}
	return s.Names[i18n.English]
}

// Contains reports whether the month/day falls within the sign's date range.
func (s Sign) Contains(m time.Month, d int) bool {
	v := int(m)*100 + d
	start := int(s.Start.Month)*100 + s.Start.Day
	end := int(s.End.Month)*100 + s.End.Day
	if start <= end {
		return v >= start && v <= end
	}
	// Range wraps the year end.
	return v >= start || v <= end
}

func names(en, es, pt, fr, de string) map[i18n.Locale]string {
	return map[i18n.Locale]string{
		i18n.English:    en,
		i18n.Spanish:    es,
		i18n.Portuguese: pt,
		i18n.French:     fr,
		i18n.German:     de,
	}
}

var signs = []Sign{
	{ID: "aries", Symbol: "♈", Names: names("Aries", "Aries", "Áries", "Bélier", "Widder"),
		Start: MonthDay{time.March, 21}, End: MonthDay{time.April, 19}, Element: Fire, Modality: Cardinal, Ruler: "Mars"},
	{ID: "taurus", Symbol: "♉", Names: names("Taurus", "Tauro", "Touro", "Taureau", "Stier"),
		Start: MonthDay{time.April, 20}, End: MonthDay{time.May, 20}, Element: Earth, Modality: Fixed, Ruler: "Venus"},
	{ID: "gemini", Symbol: "♊", Names: names("Gemini", "Géminis", "Gêmeos", "Gémeaux", "Zwillinge"),
		Start: MonthDay{time.May, 21}, End: MonthDay{time.June, 20}, Element: Air, Modality: Mutable, Ruler: "Mercury"},
	{ID: "cancer", Symbol: "♋", Names: names("Cancer", "Cáncer", "Câncer", "Cancer", "Krebs"),
		Start: MonthDay{time.June, 21}, End: MonthDay{time.July, 22}, Element: Water, Modality: Cardinal, Ruler: "Moon"},
	{ID: "leo", Symbol: "♌", Names: names("Leo", "Leo", "Leão", "Lion", "Löwe"),
		Start: MonthDay{time.July, 23}, End: MonthDay{time.August, 22}, Element: Fire, Modality: Fixed, Ruler: "Sun"},
	{ID: "virgo", Symbol: "♍", Names: names("Virgo", "Virgo", "Virgem", "Vierge", "Jungfrau"),
		Start: MonthDay{time.August, 23}, End: MonthDay{time.September, 22}, Element: Earth, Modality: Mutable, Ruler: "Mercury"},
	{ID: "libra", Symbol: "♎", Names: names("Libra", "Libra", "Libra", "Balance", "Waage"),
		Start: MonthDay{time.September, 23}, End: MonthDay{time.October, 22}, Element: Air, Modality: Cardinal, Ruler: "Venus"},
	{ID: "scorpio", Symbol: "♏", Names: names("Scorpio", "Escorpio", "Escorpião", "Scorpion", "Skorpion"),
		Start: MonthDay{time.October, 23}, End: MonthDay{time.November, 21}, Element: Water, Modality: Fixed, Ruler: "Pluto"},
	{ID: "sagittarius", Symbol: "♐", Names: names("Sagittarius", "Sagitario", "Sagitário", "Sagittaire", "Schütze"),
		Start: MonthDay{time.November, 22}, End: MonthDay{time.December, 21}, Element: Fire, Modality: Mutable, Ruler: "Jupiter"},
	{ID: "capricorn", Symbol: "♑", Names: names("Capricorn", "Capricornio", "Capricórnio", "Capricorne", "Steinbock"),
		Start: MonthDay{time.December, 22}, End: MonthDay{time.January, 19}, Element: Earth, Modality: Cardinal, Ruler: "Saturn"},
	{ID: "aquarius", Symbol: "♒", Names: names("Aquarius", "Acuario", "Aquário", "Verseau", "Wassermann"),
		Start: MonthDay{time.January, 20}, End: MonthDay{time.February, 18}, Element: Air, Modality: Fixed, Ruler: "Uranus"},
	{ID: "pisces", Symbol: "♓", Names: names("Pisces", "Piscis", "Peixes", "Poissons", "Fische"),
		Start: MonthDay{time.February, 19}, End: MonthDay{time.March, 20}, Element: Water, Modality: Mutable, Ruler: "Neptune"},
}

var byKey = map[string]int{}

func init() {
	for i := range signs {
		signs[i].index = i
		byKey[signs[i].ID] = i
		byKey[signs[i].Symbol] = i
		for _, n := range signs[i].Names {
			byKey[strings.ToLower(n)] = i
		}
	}
}

// All returns the signs in zodiac order, Aries first.
func All() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs)
	return out
}

// At returns the sign at zodiac index i, wrapping i into 0..11.
func At(i int) Sign {
	return signs[((i%12)+12)%12]
}

// Get looks up a sign by its id.
func Get(id string) (Sign, bool) {
	i, ok := byKey[id]
	if !ok || signs[i].ID != id {
		return Sign{}, false
	}
	return signs[i], true
}

// Parse accepts an id, a symbol, or a localized name, case-insensitively.
func Parse(s string) (Sign, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if i, ok := byKey[key]; ok {
		return signs[i], nil
	}
	return Sign{}, apperr.Invalid(apperr.CodeInvalidSign, "sign", "unknown zodiac sign %q", s)
}

// ForDate returns the sun sign for a calendar day.
func ForDate(m time.Month, d int) Sign {
	for _, s := range signs {
		if s.Contains(m, d) {
			return s
		}
	}
	// Unreachable for valid dates; the ranges cover the whole year.
	return signs[0]
}

// ForTime returns the sun sign for t's calendar day in t's location.
func ForTime(t time.Time) Sign {
	return ForDate(t.Month(), t.Day())
}

// ElementName returns the localized element label.
func ElementName(e Element, loc i18n.Locale) string {
	return i18n.Messages().Text(loc, "elements."+string(e))
}

// ModalityName returns the localized modality label.
func ModalityName(m Modality, loc i18n.Locale) string {
	return i18n.Messages().Text(loc, "modalities."+string(m))
}
