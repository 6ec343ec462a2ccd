// Package profile persists per-client favorites, history, preferences,
// visit streaks and engagement events.
package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/db"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// Store manages persistence of client profiles. Every method is scoped by
// client id.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a new profile store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) tx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func validSign(field, id string) error {
	if _, ok := zodiac.Get(id); !ok {
		return apperr.Invalid(apperr.CodeInvalidSign, field, "unknown sign %q", id)
	}
	return nil
}

// --- favorites ---

// Favorites returns the client's favorites ordered by position.
func (s *Store) Favorites(ctx context.Context, clientID string) ([]Favorite, error) {
	return listFavorites(ctx, s.db, clientID)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listFavorites(ctx context.Context, q querier, clientID string) ([]Favorite, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT sign, position, created_at FROM favorites WHERE client_id = ? ORDER BY position ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	favs := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.Sign, &f.Position, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// AddFavorite appends sign to the favorites. Adding an existing favorite
// leaves its position unchanged.
func (s *Store) AddFavorite(ctx context.Context, clientID, sign string) ([]Favorite, bool, error) {
	if err := validSign("sign", sign); err != nil {
		return nil, false, err
	}
	var favs []Favorite
	added := false
	err := s.tx(ctx, func(tx *sql.Tx) error {
		var err error
		favs, err = listFavorites(ctx, tx, clientID)
		if err != nil {
			return err
		}
		for _, f := range favs {
			if f.Sign == sign {
				return nil
			}
		}
		if len(favs) >= MaxFavorites {
			return apperr.New(apperr.CodeConflict, "at most %d favorites", MaxFavorites)
		}
		f := Favorite{Sign: sign, Position: len(favs), CreatedAt: s.now()}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO favorites (client_id, sign, position, created_at) VALUES (?, ?, ?, ?)`,
			clientID, f.Sign, f.Position, f.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting favorite: %w", err)
		}
		favs = append(favs, f)
		added = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return favs, added, nil
}

// RemoveFavorite deletes sign and closes the gap in positions.
func (s *Store) RemoveFavorite(ctx context.Context, clientID, sign string) ([]Favorite, error) {
	if err := validSign("sign", sign); err != nil {
		return nil, err
	}
	var favs []Favorite
	err := s.tx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE client_id = ? AND sign = ?`, clientID, sign)
		if err != nil {
			return fmt.Errorf("deleting favorite: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return apperr.New(apperr.CodeNotFound, "%s is not a favorite", sign)
		}
		current, err := listFavorites(ctx, tx, clientID)
		if err != nil {
			return err
		}
		order := make([]string, len(current))
		for i, f := range current {
			order[i] = f.Sign
		}
		if err := renumber(ctx, tx, clientID, order); err != nil {
			return err
		}
		favs, err = listFavorites(ctx, tx, clientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// ReorderFavorites sets the order to signs, which must be a permutation of
// the current favorites.
func (s *Store) ReorderFavorites(ctx context.Context, clientID string, signs []string) ([]Favorite, error) {
	var favs []Favorite
	err := s.tx(ctx, func(tx *sql.Tx) error {
		current, err := listFavorites(ctx, tx, clientID)
		if err != nil {
			return err
		}
		if !isPermutation(current, signs) {
			return apperr.Invalid(apperr.CodeInvalidParam, "signs", "must list every current favorite exactly once")
		}
		if err := renumber(ctx, tx, clientID, signs); err != nil {
			return err
		}
		favs, err = listFavorites(ctx, tx, clientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func renumber(ctx context.Context, tx *sql.Tx, clientID string, order []string) error {
	for i, sign := range order {
		if _, err := tx.ExecContext(ctx,
			`UPDATE favorites SET position = ? WHERE client_id = ? AND sign = ?`, i, clientID, sign,
		); err != nil {
			return fmt.Errorf("updating favorite position: %w", err)
		}
	}
	return nil
}

func isPermutation(current []Favorite, signs []string) bool {
	if len(current) != len(signs) {
		return false
	}
	want := make(map[string]bool, len(current))
	for _, f := range current {
		want[f.Sign] = true
	}
	for _, s := range signs {
		if !want[s] {
			return false
		}
		delete(want, s)
	}
	return len(want) == 0
}

// --- history ---

// AddHistory records an entry and prunes anything beyond the newest MaxHistory.
func (s *Store) AddHistory(ctx context.Context, clientID string, e HistoryEntry) (*HistoryEntry, error) {
	if !validKinds[e.Kind] {
		return nil, apperr.Invalid(apperr.CodeInvalidParam, "kind", "unknown history kind %q", e.Kind)
	}
	if e.Sign != "" {
		if err := validSign("sign", e.Sign); err != nil {
			return nil, err
		}
	}
	e.ID = uuid.New().String()
	e.CreatedAt = s.now()

	err := s.tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO history (id, client_id, kind, sign, label, path, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, clientID, e.Kind, e.Sign, e.Label, e.Path, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting history: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			`DELETE FROM history WHERE client_id = ? AND seq NOT IN (
			   SELECT seq FROM history WHERE client_id = ? ORDER BY seq DESC LIMIT ?)`,
			clientID, clientID, MaxHistory,
		)
		if err != nil {
			return fmt.Errorf("pruning history: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			zap.L().Debug("pruned history", zap.String("client_id", clientID), zap.Int64("rows", n))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// History returns up to limit entries, newest first. A limit outside
// 1..MaxHistory means MaxHistory.
func (s *Store) History(ctx context.Context, clientID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 || limit > MaxHistory {
		limit = MaxHistory
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, sign, label, path, created_at FROM history
		 WHERE client_id = ? ORDER BY seq DESC LIMIT ?`, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Sign, &e.Label, &e.Path, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory deletes all of the client's history and returns the count removed.
func (s *Store) ClearHistory(ctx context.Context, clientID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE client_id = ?`, clientID)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// --- preferences ---

// Preferences returns the stored preferences or the defaults.
func (s *Store) Preferences(ctx context.Context, clientID string) (*Preferences, error) {
	var p Preferences
	var updated time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT locale, sign, theme, email_opt_in, updated_at FROM preferences WHERE client_id = ?`, clientID,
	).Scan(&p.Locale, &p.Sign, &p.Theme, &p.EmailOptIn, &updated)
	if err == sql.ErrNoRows {
		d := DefaultPreferences()
		return &d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting preferences: %w", err)
	}
	p.UpdatedAt = &updated
	return &p, nil
}

// PutPreferences validates and replaces the client's preferences. Empty
// locale and theme take their defaults.
func (s *Store) PutPreferences(ctx context.Context, clientID string, p Preferences) (*Preferences, error) {
	if p.Locale == "" {
		p.Locale = i18n.Default
	}
	loc, err := i18n.ParseLocale(string(p.Locale))
	if err != nil {
		return nil, err
	}
	p.Locale = loc
	if p.Theme == "" {
		p.Theme = ThemeSystem
	}
	if !validThemes[p.Theme] {
		return nil, apperr.Invalid(apperr.CodeInvalidParam, "theme", "theme must be system, light or dark")
	}
	if p.Sign != "" {
		if err := validSign("sign", p.Sign); err != nil {
			return nil, err
		}
	}
	now := s.now()
	p.UpdatedAt = &now

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences (client_id, locale, sign, theme, email_opt_in, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET locale = excluded.locale, sign = excluded.sign,
		   theme = excluded.theme, email_opt_in = excluded.email_opt_in, updated_at = excluded.updated_at`,
		clientID, p.Locale, p.Sign, p.Theme, p.EmailOptIn, now,
	)
	if err != nil {
		return nil, fmt.Errorf("saving preferences: %w", err)
	}
	return &p, nil
}

// --- streaks ---

// Streak returns the client's visit streak and badges.
func (s *Store) Streak(ctx context.Context, clientID string) (*Streak, error) {
	st, err := loadStreak(ctx, s.db, clientID)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

type rowQuerier interface {
	querier
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadStreak(ctx context.Context, q rowQuerier, clientID string) (Streak, error) {
	st := Streak{Badges: []Badge{}}
	err := q.QueryRowContext(ctx,
		`SELECT current, longest, last_visit FROM streaks WHERE client_id = ?`, clientID,
	).Scan(&st.Current, &st.Longest, &st.LastVisit)
	if err != nil && err != sql.ErrNoRows {
		return st, fmt.Errorf("getting streak: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT milestone, awarded_at FROM badges WHERE client_id = ? ORDER BY milestone ASC`, clientID)
	if err != nil {
		return st, fmt.Errorf("listing badges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.Milestone, &b.AwardedAt); err != nil {
			return st, fmt.Errorf("scanning badge: %w", err)
		}
		st.Badges = append(st.Badges, b)
	}
	return st, rows.Err()
}

// RecordVisit counts a visit on the calendar day of at.
func (s *Store) RecordVisit(ctx context.Context, clientID string, at time.Time) (*VisitResult, error) {
	var result VisitResult
	err := s.tx(ctx, func(tx *sql.Tx) error {
		var err error
		result, err = s.recordVisit(ctx, tx, clientID, at)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Store) recordVisit(ctx context.Context, tx *sql.Tx, clientID string, at time.Time) (VisitResult, error) {
	st, err := loadStreak(ctx, tx, clientID)
	if err != nil {
		return VisitResult{}, err
	}
	next, changed := advance(st, at)
	res := VisitResult{Streak: next, NewBadges: []int{}}
	if !changed {
		return res, nil
	}

	now := s.now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO streaks (client_id, current, longest, last_visit, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET current = excluded.current, longest = excluded.longest,
		   last_visit = excluded.last_visit, updated_at = excluded.updated_at`,
		clientID, next.Current, next.Longest, next.LastVisit, now,
	); err != nil {
		return VisitResult{}, fmt.Errorf("saving streak: %w", err)
	}

	for _, m := range Milestones {
		if next.Current < m {
			break
		}
		r, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO badges (client_id, milestone, awarded_at) VALUES (?, ?, ?)`, clientID, m, now)
		if err != nil {
			return VisitResult{}, fmt.Errorf("awarding badge: %w", err)
		}
		if n, _ := r.RowsAffected(); n > 0 {
			res.NewBadges = append(res.NewBadges, m)
			res.Streak.Badges = append(res.Streak.Badges, Badge{Milestone: m, AwardedAt: now})
		}
	}
	if len(res.NewBadges) > 0 {
		zap.L().Info("streak milestone", zap.String("client_id", clientID), zap.Ints("badges", res.NewBadges))
	}
	return res, nil
}

// advance applies a visit on the day of at. Repeat visits on the same day,
// or on a day before the last visit, change nothing.
func advance(st Streak, at time.Time) (Streak, bool) {
	day := calendar.Day(at)
	if st.LastVisit != "" {
		last, err := time.Parse(calendar.DateLayout, st.LastVisit)
		if err == nil {
			switch gap := calendar.DaysBetween(last, day); {
			case gap <= 0:
				return st, false
			case gap == 1:
				st.Current++
			default:
				st.Current = 1
			}
		} else {
			st.Current = 1
		}
	} else {
		st.Current = 1
	}
	if st.Current > st.Longest {
		st.Longest = st.Current
	}
	st.LastVisit = day.Format(calendar.DateLayout)
	return st, true
}

// --- events ---

var validEvents = func() map[EventType]bool {
	m := make(map[EventType]bool, len(EventTypes))
	for _, t := range EventTypes {
		m[t] = true
	}
	return m
}()

// RecordEvent stores an engagement event and counts it as a visit.
func (s *Store) RecordEvent(ctx context.Context, clientID string, typ EventType, sign string) (*Event, *VisitResult, error) {
	if !validEvents[typ] {
		return nil, nil, apperr.Invalid(apperr.CodeInvalidParam, "type", "unknown event type %q", typ)
	}
	if sign != "" {
		if err := validSign("sign", sign); err != nil {
			return nil, nil, err
		}
	}
	ev := Event{ID: uuid.New().String(), Type: typ, Sign: sign, CreatedAt: s.now()}

	var visit VisitResult
	err := s.tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, client_id, type, sign, created_at) VALUES (?, ?, ?, ?, ?)`,
			ev.ID, clientID, ev.Type, ev.Sign, ev.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting event: %w", err)
		}
		var err error
		visit, err = s.recordVisit(ctx, tx, clientID, ev.CreatedAt)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &ev, &visit, nil
}

// EventCounts returns the number of events per type, including zeros.
func (s *Store) EventCounts(ctx context.Context, clientID string) (map[EventType]int, error) {
	counts := make(map[EventType]int, len(EventTypes))
	for _, t := range EventTypes {
		counts[t] = 0
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, COUNT(*) FROM events WHERE client_id = ? GROUP BY type`, clientID)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t EventType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scanning event count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}
