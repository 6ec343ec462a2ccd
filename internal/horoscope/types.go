package horoscope

import "github.com/ziadkadry99/zodiac/internal/i18n"

// Period is the span a reading covers.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// Category is one of the scored life areas.
type Category string

const (
	Love   Category = "love"
	Career Category = "career"
	Health Category = "health"
	Money  Category = "money"
)

// Categories lists every scored category in output order.
var Categories = []Category{Love, Career, Health, Money}

// Score bounds for every category.
const (
	MinScore = 1
	MaxScore = 5
)

// CategoryReading is the score and text for one category.
type CategoryReading struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Score    int      `json:"score"`
	Text     string   `json:"text"`
}

// Reading is a generated horoscope for one sign and period.
type Reading struct {
	Sign        string            `json:"sign"`
	SignName    string            `json:"sign_name"`
	Period      Period            `json:"period"`
	Key         string            `json:"key"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Locale      i18n.Locale       `json:"locale"`
	Intro       string            `json:"intro"`
	Overall     int               `json:"overall"`
	Summary     string            `json:"summary"`
	Categories  []CategoryReading `json:"categories"`
	LuckyNumber int               `json:"lucky_number"`
	LuckyColor  string            `json:"lucky_color"`
	LuckyTime   string            `json:"lucky_time"`
	BestDay     string            `json:"best_day,omitempty"`
	KeyDates    []string          `json:"key_dates,omitempty"`
}

// Score returns the score of category c, or 0 if absent.
func (r *Reading) Score(c Category) int {
	for _, cr := range r.Categories {
		if cr.Category == c {
			return cr.Score
		}
	}
	return 0
}
