package worker

import (
	"context"
	"fmt"
	"log/slog"
	"mirrorbot/internal/alerts"
	"mirrorbot/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// queueMaxWorkers caps concurrent job executions across both worker kinds.
const queueMaxWorkers = 50

// sweepSchedule runs the feed sweep every interval and once on startup, so a
// freshly booted instance checks the feed without waiting for the first tick.
func sweepSchedule(interval time.Duration) *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return alerts.SweepArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

// Start registers the notify and sweep workers and starts a River client on
// the given pool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service alerts.Service,
	sweepInterval time.Duration) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, &NotifyWorker{alerts: service})
	river.AddWorker(workers, &SweepWorker{alerts: service})

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: queueMaxWorkers},
		},
		PeriodicJobs: []*river.PeriodicJob{sweepSchedule(sweepInterval)},
	})
	if err != nil {
		return nil, fmt.Errorf("could not build river client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river client: %w", err)
	}

	return riverClient, nil
}
