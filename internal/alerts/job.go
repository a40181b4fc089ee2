package alerts

import (
	"mirrorbot/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// NotifyArgs contains the arguments for an incident notification job
// submitted to River. The incident ID doubles as the uniqueness key so each
// incident gets exactly one notification pipeline.
type NotifyArgs struct {
	// IncidentID identifies the incident to notify about. It is marked as
	// unique so River can enforce one job per incident according to
	// InsertOpts.UniqueOpts.
	IncidentID domain.IncidentID `json:"incident_id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry
	// the notification before giving up.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the notify worker.
func (args NotifyArgs) Kind() string { return "NotifyIncidentJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the retry budget and uniqueness constraints that prevent
// duplicate notifications for the same incident.
func (args NotifyArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only ever have one notification job per incident
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SweepArgs enqueues a feed sweep. Sweeps carry no payload; uniqueness by
// state keeps at most one sweep outstanding at a time.
type SweepArgs struct{}

// Kind returns the River job kind used to register and dispatch the sweep worker.
func (SweepArgs) Kind() string { return "SweepAlertFeedJob" }

// InsertOpts returns the River options for sweep jobs. A failed sweep is not
// retried; the next periodic tick polls the feed again anyway.
func (SweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
