package worker

import (
	"context"
	"fmt"
	"mirrorbot/internal/alerts"
	"mirrorbot/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SweepWorker is a River worker that runs one poll of the alert feed. It is
// driven by the periodic job registered in Start, so each run corresponds to
// one tick of the sweep schedule. Sweep jobs run with a single attempt; a
// failed poll is simply picked up again on the next tick rather than retried
// with backoff in between.
type SweepWorker struct {
	river.WorkerDefaults[alerts.SweepArgs]

	// alerts polls the feed and records nearby incidents.
	alerts alerts.Service
}

// NewSweepWorker constructs a SweepWorker backed by the given alerts service.
func NewSweepWorker(alerts alerts.Service) *SweepWorker {
	return &SweepWorker{alerts: alerts}
}

// Work runs a single feed sweep.
func (s *SweepWorker) Work(ctx context.Context, job *river.Job[alerts.SweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := s.alerts.Sweep(ctx); err != nil {
		logger.Error(ctx, "error sweeping alert feed", zap.Error(err))

		return fmt.Errorf("could not sweep alert feed: %w", err)
	}

	logger.Debug(ctx, "alert feed swept")

	return nil
}
