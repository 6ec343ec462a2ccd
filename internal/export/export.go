// Package export pre-generates daily readings as static JSON files laid out
// as <out>/<locale>/<date>/<sign>.json.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/calendar"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/progress"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

// MaxDays bounds a single export run.
const MaxDays = 366

// Source produces the encoded daily reading.
type Source interface {
	Daily(ctx context.Context, sign zodiac.Sign, date time.Time, loc i18n.Locale) ([]byte, error)
}

// Options controls an export run. Empty Locales or Signs mean all of them.
type Options struct {
	OutDir      string
	From        time.Time
	Days        int
	Locales     []i18n.Locale
	Signs       []zodiac.Sign
	Concurrency int
	Reporter    progress.Reporter
}

// Manifest is written to <out>/manifest.json after a successful run.
type Manifest struct {
	From        string        `json:"from"`
	To          string        `json:"to"`
	Locales     []i18n.Locale `json:"locales"`
	Signs       []string      `json:"signs"`
	Files       int           `json:"files"`
	GeneratedAt string        `json:"generated_at"`
}

type job struct {
	loc  i18n.Locale
	day  time.Time
	sign zodiac.Sign
}

func (j job) path(out string) string {
	return filepath.Join(out, string(j.loc), j.day.Format(calendar.DateLayout), j.sign.ID+".json")
}

// Run writes every (locale, day, sign) reading and returns the manifest.
func Run(ctx context.Context, src Source, opts Options) (*Manifest, error) {
	if opts.OutDir == "" {
		return nil, apperr.Invalid(apperr.CodeInvalidParam, "out", "output directory is required")
	}
	if opts.Days < 1 || opts.Days > MaxDays {
		return nil, apperr.Invalid(apperr.CodeInvalidParam, "days", "days must be 1..%d", MaxDays)
	}
	if err := calendar.CheckYear("from", opts.From.Year()); err != nil {
		return nil, err
	}
	last := opts.From.AddDate(0, 0, opts.Days-1)
	if err := calendar.CheckYear("days", last.Year()); err != nil {
		return nil, err
	}
	locales := opts.Locales
	if len(locales) == 0 {
		locales = i18n.Supported
	}
	signs := opts.Signs
	if len(signs) == 0 {
		signs = zodiac.All()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 4
	}
	rep := opts.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}

	from := calendar.Day(opts.From)
	var jobs []job
	for _, loc := range locales {
		for d := 0; d < opts.Days; d++ {
			for _, s := range signs {
				jobs = append(jobs, job{loc: loc, day: from.AddDate(0, 0, d), sign: s})
			}
		}
	}

	rep.Start(len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			payload, err := src.Daily(gctx, j.sign, j.day, j.loc)
			if err != nil {
				return fmt.Errorf("generating %s: %w", j.path(""), err)
			}
			if err := writeFile(j.path(opts.OutDir), payload); err != nil {
				return err
			}
			rep.Increment(filepath.ToSlash(j.path("")))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	rep.Finish()

	m := &Manifest{
		From:        from.Format(calendar.DateLayout),
		To:          calendar.Day(last).Format(calendar.DateLayout),
		Locales:     locales,
		Files:       len(jobs),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, s := range signs {
		m.Signs = append(m.Signs, s.ID)
	}
	sort.Strings(m.Signs)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := writeFile(filepath.Join(opts.OutDir, "manifest.json"), append(data, '\n')); err != nil {
		return nil, err
	}
	zap.L().Info("export complete",
		zap.String("out", opts.OutDir),
		zap.Int("files", m.Files),
		zap.String("from", m.From),
		zap.String("to", m.To),
	)
	return m, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
