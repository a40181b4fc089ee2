package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend. The args
// parameter carries the job payload; opts can customize insertion behavior
// such as queue name, uniqueness or schedule.
//
// The interface is intentionally small so that backends stay decoupled from
// the rest of the storage surface while still taking part in transactions.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction when the backend supports it.
	// The boolean result reports whether a job was actually enqueued; it is
	// false when the insert was skipped because an equivalent unique job
	// already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
