package worker

import (
	"context"
	"errors"
	"fmt"
	"mirrorbot/internal/alerts"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a notify job sleeps after the channel rate
// limits a delivery. The webhook API does not report when the limit resets,
// so a fixed pause has to do.
const rateLimitSnooze = time.Minute

// NotifyWorker is a River worker that delivers the notification for a single
// stored incident. The heavy lifting (looking up the incident, formatting the
// message, posting it, and recording the outcome) lives in the alerts service;
// the worker only maps service errors to River actions.
//
// Error handling: if the incident no longer exists the job is canceled, since
// retrying cannot succeed. If delivery was rate limited by the channel, the
// job is snoozed briefly instead of burning a retry attempt. Other errors are
// logged and returned so River retries with backoff up to the job's
// MaxAttempts, after which the incident stays in the FAILED state recorded by
// the service.
type NotifyWorker struct {
	river.WorkerDefaults[alerts.NotifyArgs]

	// alerts posts the incident and records the delivery outcome.
	alerts alerts.Service
}

// NewNotifyWorker constructs a NotifyWorker backed by the given alerts service.
func NewNotifyWorker(alerts alerts.Service) *NotifyWorker {
	return &NotifyWorker{alerts: alerts}
}

// Work delivers the notification for the incident named in the job args.
func (n *NotifyWorker) Work(ctx context.Context, job *river.Job[alerts.NotifyArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("incidentID", uuid.UUID(job.Args.IncidentID).String()))

	if err := n.alerts.Notify(ctx, job.Args.IncidentID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error notifying incident", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not notify incident: %w", err)
	}

	logger.Info(ctx, "incident notified successfully")

	return nil
}
