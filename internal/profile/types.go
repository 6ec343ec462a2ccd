package profile

import (
	"time"

	"github.com/ziadkadry99/zodiac/internal/i18n"
)

// Limits on stored profile data.
const (
	MaxFavorites = 12
	MaxHistory   = 100
)

// Milestones are the streak lengths that award a badge.
var Milestones = []int{3, 7, 14, 30, 100, 365}

// Favorite is a pinned sign.
type Favorite struct {
	Sign      string    `json:"sign"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryKind is what a history entry was viewing.
type HistoryKind string

const (
	KindHoroscope     HistoryKind = "horoscope"
	KindCompatibility HistoryKind = "compatibility"
	KindBirthChart    HistoryKind = "birth_chart"
	KindBiorhythm     HistoryKind = "biorhythm"
)

var validKinds = map[HistoryKind]bool{
	KindHoroscope:     true,
	KindCompatibility: true,
	KindBirthChart:    true,
	KindBiorhythm:     true,
}

// HistoryEntry is one recently viewed item.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Kind      HistoryKind `json:"kind"`
	Sign      string      `json:"sign,omitempty"`
	Label     string      `json:"label,omitempty"`
	Path      string      `json:"path,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

var validThemes = map[Theme]bool{
	ThemeSystem: true,
	ThemeLight:  true,
	ThemeDark:   true,
}

// Preferences are per-client settings.
type Preferences struct {
	Locale     i18n.Locale `json:"locale"`
	Sign       string      `json:"sign,omitempty"`
	Theme      Theme       `json:"theme"`
	EmailOptIn bool        `json:"email_opt_in"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
}

// DefaultPreferences is returned for clients that never saved any.
func DefaultPreferences() Preferences {
	return Preferences{Locale: i18n.Default, Theme: ThemeSystem}
}

// Badge records a reached milestone.
type Badge struct {
	Milestone int       `json:"milestone"`
	AwardedAt time.Time `json:"awarded_at"`
}

// Streak counts consecutive visit days.
type Streak struct {
	Current   int     `json:"current"`
	Longest   int     `json:"longest"`
	LastVisit string  `json:"last_visit,omitempty"`
	Badges    []Badge `json:"badges"`
}

// VisitResult is the streak after a visit plus any badges it earned.
type VisitResult struct {
	Streak    Streak `json:"streak"`
	NewBadges []int  `json:"new_badges"`
}

// EventType is an engagement event recorded by the client.
type EventType string

const (
	EventHoroscopeView      EventType = "horoscope_view"
	EventCompatibilityCheck EventType = "compatibility_check"
	EventBirthChart         EventType = "birth_chart"
	EventBiorhythm          EventType = "biorhythm"
	EventFavoriteAdded      EventType = "favorite_added"
)

// EventTypes lists every recognized event type.
var EventTypes = []EventType{
	EventHoroscopeView,
	EventCompatibilityCheck,
	EventBirthChart,
	EventBiorhythm,
	EventFavoriteAdded,
}

// Event is a stored engagement event.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Sign      string    `json:"sign,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
