// Package scheduler runs periodic jobs such as the daily cache warm.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/config"
)

// Runner wraps a seconds-aware cron with a shared base context.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithParser(config.CronParser), cron.WithLocation(time.UTC)),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add schedules job under spec. Runs of the same job never overlap.
func (r *Runner) Add(name, spec string, job func(context.Context) error) (cron.EntryID, error) {
	var mu sync.Mutex
	return r.cron.AddFunc(spec, func() {
		if !mu.TryLock() {
			r.logger.Warn("job still running, skipped", zap.String("job", name))
			return
		}
		defer mu.Unlock()

		start := time.Now()
		if err := job(r.baseCtx); err != nil {
			r.logger.Error("job failed", zap.String("job", name), zap.Error(err))
			return
		}
		r.logger.Info("job done", zap.String("job", name), zap.Duration("took", time.Since(start)))
	})
}

// Len returns the number of scheduled entries.
func (r *Runner) Len() int {
	return len(r.cron.Entries())
}

func (r *Runner) Start() {
	r.logger.Info("scheduler started", zap.Int("jobs", r.Len()))
	r.cron.Start()
}

// Stop waits for running jobs to return.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("scheduler stopped")
}

// Warmer precomputes the readings of one day.
type Warmer interface {
	Warm(ctx context.Context, day time.Time) (int, error)
}

// WarmJob warms the UTC day that is current when the job fires.
func WarmJob(w Warmer, now func() time.Time) func(context.Context) error {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context) error {
		_, err := w.Warm(ctx, now().UTC())
		return err
	}
}
