// Package compatibility scores sign pairs from their aspect and elements.
package compatibility

import (
	"math"

	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Aspect is the angular relationship between two signs.
type Aspect string

const (
	Conjunction Aspect = "conjunction"
	SemiSextile Aspect = "semi_sextile"
	Sextile     Aspect = "sextile"
	Square      Aspect = "square"
	Trine       Aspect = "trine"
	Quincunx    Aspect = "quincunx"
	Opposition  Aspect = "opposition"
)

// aspects is indexed by the shortest distance between signs, 0..6.
var aspects = [7]Aspect{Conjunction, SemiSextile, Sextile, Square, Trine, Quincunx, Opposition}

// Harmony classifies the element pairing.
type Harmony string

const (
	SameElement   Harmony = "same"
	Complementary Harmony = "complementary"
	Challenging   Harmony = "challenging"
)

type scores struct{ love, friendship, work int }

var baseScores = map[Aspect]scores{
	Conjunction: {75, 80, 70},
	SemiSextile: {55, 60, 65},
	Sextile:     {80, 85, 75},
	Square:      {40, 50, 45},
	Trine:       {90, 85, 80},
	Quincunx:    {45, 50, 55},
	Opposition:  {65, 55, 60},
}

var harmonyAdjust = map[Harmony]int{
	SameElement:   5,
	Complementary: 5,
	Challenging:   -5,
}

// Result describes how two signs get along.
type Result struct {
	SignA       string      `json:"sign_a"`
	NameA       string      `json:"name_a"`
	SignB       string      `json:"sign_b"`
	NameB       string      `json:"name_b"`
	Aspect      Aspect      `json:"aspect"`
	AspectName  string      `json:"aspect_name"`
	Harmony     Harmony     `json:"harmony"`
	HarmonyText string      `json:"harmony_text"`
	Love        int         `json:"love"`
	Friendship  int         `json:"friendship"`
	Work        int         `json:"work"`
	Overall     int         `json:"overall"`
	Summary     string      `json:"summary"`
	Locale      i18n.Locale `json:"locale"`
}

// AspectBetween returns the aspect formed by two signs.
func AspectBetween(a, b zodiac.Sign) Aspect {
	d := a.Index() - b.Index()
	if d < 0 {
		d = -d
	}
	if d > 6 {
		d = 12 - d
	}
	return aspects[d]
}

// HarmonyOf classifies the elements of two signs.
func HarmonyOf(a, b zodiac.Element) Harmony {
	if a == b {
		return SameElement
	}
	pair := map[zodiac.Element]zodiac.Element{
		zodiac.Fire:  zodiac.Air,
		zodiac.Air:   zodiac.Fire,
		zodiac.Earth: zodiac.Water,
		zodiac.Water: zodiac.Earth,
	}
	if pair[a] == b {
		return Complementary
	}
	return Challenging
}

// Compare scores a pair of signs. Scores are symmetric in a and b.
func Compare(a, b zodiac.Sign, loc i18n.Locale) Result {
	msgs := i18n.Messages()
	aspect := AspectBetween(a, b)
	harmony := HarmonyOf(a.Element, b.Element)
	base := baseScores[aspect]
	adj := harmonyAdjust[harmony]

	r := Result{
		SignA:       a.ID,
		NameA:       a.Name(loc),
		SignB:       b.ID,
		NameB:       b.Name(loc),
		Aspect:      aspect,
		AspectName:  msgs.Text(loc, "aspects."+string(aspect)),
		Harmony:     harmony,
		HarmonyText: msgs.Text(loc, "harmony."+string(harmony)),
		Love:        clamp(base.love + adj),
		Friendship:  clamp(base.friendship + adj),
		Work:        clamp(base.work + adj),
		Locale:      loc,
	}
	r.Overall = int(math.Round(float64(r.Love+r.Friendship+r.Work) / 3))

	variant := a.Index() + b.Index()
	tmpl := msgs.Pick(loc, "compatibility."+tierOf(r.Overall), variant)
	r.Summary = i18n.Format(tmpl, map[string]string{"a": r.NameA, "b": r.NameB})
	return r
}

// Matrix returns the overall score for every ordered pair, indexed by zodiac index.
func Matrix() [12][12]int {
	var m [12][12]int
	signs := zodiac.All()
	for i, a := range signs {
		for j, b := range signs {
			m[i][j] = Compare(a, b, i18n.Default).Overall
		}
	}
	return m
}

func tierOf(overall int) string {
	switch {
	case overall >= 75:
		return "high"
	case overall >= 55:
		return "mid"
	default:
		return "low"
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
