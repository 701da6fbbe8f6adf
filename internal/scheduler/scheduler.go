package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Exporter is the idempotent export the cron entries invoke.
type Exporter interface {
	ExportAll(ctx context.Context) error
}

const runTimeout = 5 * time.Minute

// Scheduler periodically re-exports all data. Exports rewrite the whole
// spreadsheet, so overlapping or skipped runs are harmless.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func New(exporter Exporter, dailySpec, weeklySpec string, log *zap.Logger) (*Scheduler, error) {
	c := cron.New()

	run := func(label string) func() {
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			defer cancel()

			log.Info("running scheduled data export", zap.String("schedule", label))
			if err := exporter.ExportAll(ctx); err != nil {
				log.Error("scheduled export failed", zap.String("schedule", label), zap.Error(err))
			}
		}
	}

	if _, err := c.AddFunc(dailySpec, run("daily")); err != nil {
		return nil, fmt.Errorf("daily export spec %q: %w", dailySpec, err)
	}
	if _, err := c.AddFunc(weeklySpec, run("weekly")); err != nil {
		return nil, fmt.Errorf("weekly export spec %q: %w", weeklySpec, err)
	}

	log.Info("data export scheduler initialized",
		zap.String("daily", dailySpec),
		zap.String("weekly", weeklySpec),
	)
	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running export to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("data export scheduler stopped")
}
