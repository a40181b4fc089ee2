// Package alerts watches a geo-tagged alert feed and posts incidents that
// are close to a configured point of interest into a Mattermost channel. New
// feed entries become PENDING incidents; a background job posts each one and
// marks it NOTIFIED, or FAILED once the attempt budget is spent.
package alerts

import (
	"context"
	"errors"
	"fmt"
	"mirrorbot/internal/config"
	"mirrorbot/pkg/alertfeed"
	"mirrorbot/pkg/domain"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/mattermost"
	"mirrorbot/pkg/serrors"
	"mirrorbot/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Options configure which feed entries are considered nearby and how
// notifications are retried. These settings are typically derived from
// application configuration.
type Options struct {
	// Centre is the point of interest alerts are filtered around.
	Centre domain.LatLong
	// RadiusKm is the edge distance of the alert box around Centre.
	RadiusKm float64
	// MaxAttempts is the maximum number of notification attempts the
	// background worker should make before marking an incident failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Centre:      domain.LatLong{Lat: cfg.Alerts.CentreLat, Long: cfg.Alerts.CentreLong},
		RadiusKm:    cfg.Alerts.RadiusKm,
		MaxAttempts: cfg.Alerts.MaxNotifyAttempts,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates the feed source, the persistence layer and the webhook poster.
type service struct {
	// options holds runtime configuration that affects filtering and retries.
	options Options
	// storage is the persistence layer used to store incidents and manage jobs.
	storage storage.Storage
	// source is the upstream feed the sweep polls.
	source alertfeed.Source
	// poster delivers messages to the Mattermost channel.
	poster mattermost.Poster
}

// Sweep polls the alert feed once, stores nearby entries that have not been
// seen before as pending incidents, and enqueues one notification job per new
// incident. When the feed cannot be fetched a short notice is posted to the
// channel on a best-effort basis and the fetch error is returned.
func (s service) Sweep(ctx context.Context) error {
	entries, err := s.source.Entries(ctx)
	if err != nil {
		notice := mattermost.Message{Text: fmt.Sprintf("unable to poll bushfire feed: %v", err)}
		if postErr := s.poster.Post(ctx, notice); postErr != nil {
			logger.Warn(ctx, "could not report feed failure", zap.Error(postErr))
		}

		return fmt.Errorf("could not poll feed: %w", err)
	}

	var incidents []domain.Incident
	for _, entry := range entries {
		if !Near(entry.Point, s.options.Centre, s.options.RadiusKm) {
			continue
		}

		incidents = append(incidents, domain.Incident{
			ExternalID:  entry.ID,
			Category:    entry.Category,
			Title:       entry.Title,
			Content:     entry.Content,
			Point:       entry.Point,
			Status:      domain.IncidentStatusPending,
			PublishedAt: entry.PublishedAt,
		})
	}

	if len(incidents) == 0 {
		return nil
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreIncidents(ctx, incidents...)
		if err != nil {
			return fmt.Errorf("could not store incidents: %w", err)
		}

		// entries seen in a previous sweep are skipped by StoreIncidents,
		// so every returned row gets exactly one notification job.
		for _, incident := range stored {
			if _, err := tx.AddJob(ctx, NotifyArgs{
				IncidentID:  incident.ID,
				maxAttempts: s.options.MaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add notify job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not record incidents: %w", err)
	}

	return nil
}

// Notify posts the alert message for a single pending incident and marks it
// NOTIFIED. When the post fails the error is recorded on the incident; once
// the attempt budget is exhausted the incident flips to FAILED and is not
// retried again. Rate-limited posts are the exception: they leave the
// incident untouched so a later retry does not find it failed.
func (s service) Notify(ctx context.Context, ID domain.IncidentID) error {
	incident, err := s.storage.IncidentByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get incident: %w", err)
	}
	if incident == nil {
		return serrors.With(serrors.ErrNotFound, "incident not found")
	}
	if incident.Status != domain.IncidentStatusPending {
		// already notified or given up on, nothing to post
		return nil
	}

	if postErr := s.poster.Post(ctx, mattermost.Message{Text: NotificationText(*incident)}); postErr != nil {
		if errors.Is(postErr, serrors.ErrRateLimited) {
			return fmt.Errorf("could not post notification: %w", postErr)
		}

		lastError := postErr.Error()
		if _, err := s.storage.UpdateIncidentByID(ctx, ID, storage.IncidentUpdates{
			Status:      domain.IncidentStatusFailed,
			LastError:   &lastError,
			MaxAttempts: s.options.MaxAttempts,
		}); err != nil {
			logger.Warn(ctx, "could not record notification failure", zap.Error(err))
		}

		return fmt.Errorf("could not post notification: %w", postErr)
	}

	cleared := ""
	if _, err := s.storage.UpdateIncidentByID(ctx, ID, storage.IncidentUpdates{
		Status:    domain.IncidentStatusNotified,
		LastError: &cleared,
	}); err != nil {
		return fmt.Errorf("could not mark incident notified: %w", err)
	}

	return nil
}

// Incidents returns a page of incidents filtered by status. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s service) Incidents(ctx context.Context,
	status domain.IncidentStatus,
	cursor string,
	limit uint) ([]domain.Incident, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.Incidents(ctx, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get incidents: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Incidents, next, nil
}

// Incident fetches a single incident by ID. It returns a not-found error
// when no matching incident exists.
func (s service) Incident(ctx context.Context, ID domain.IncidentID) (*domain.Incident, error) {
	res, err := s.storage.IncidentByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get incident: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "incident not found")
	}

	return res, nil
}

// Delete soft deletes an incident. If the incident does not exist, a
// not-found error is returned. Any outstanding notification job is left in
// the queue; Notify skips incidents that are no longer pending or present.
func (s service) Delete(ctx context.Context, ID domain.IncidentID) error {
	res, err := s.storage.DeleteIncident(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete incident: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "incident not found")
	}

	return nil
}

// New creates a new Service instance backed by the provided storage, feed
// source and webhook poster, configured with the given options.
func New(storage storage.Storage, source alertfeed.Source, poster mattermost.Poster, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		source:  source,
		poster:  poster,
	}
}
