package domain

import (
	"time"

	"github.com/google/uuid"
)

// IncidentID uniquely identifies an incident.
// It wraps uuid.UUID to provide type safety at the domain layer.
type IncidentID uuid.UUID

// IncidentStatus represents the notification lifecycle state of an incident.
type IncidentStatus string

const (
	// IncidentStatusPending indicates the incident was recorded but the
	// channel has not been notified yet.
	IncidentStatusPending IncidentStatus = "PENDING"
	// IncidentStatusNotified indicates the webhook notification was delivered.
	IncidentStatusNotified IncidentStatus = "NOTIFIED"
	// IncidentStatusFailed indicates delivery gave up; see LastError and
	// Attempts for details.
	IncidentStatusFailed IncidentStatus = "FAILED"
)

// Incident is one alert-feed entry that fell inside the monitored area.
// It tracks the feed-assigned identity, the alert content, delivery state,
// and timestamps.
type Incident struct {
	// ID is the unique identifier of the incident row.
	ID IncidentID `json:"id"`
	// ExternalID is the feed entry ID. It is the dedup key: an entry seen once
	// is never recorded (or notified) again.
	ExternalID string `json:"externalId"`

	// Category is the alert level published by the feed (e.g. "Watch and Act").
	Category string `json:"category"`
	// Title is the feed entry title.
	Title string `json:"title"`
	// Content is the feed entry body text.
	Content string `json:"content"`
	// Point is the incident location. Nil when the feed entry carried none.
	Point *LatLong `json:"point,omitempty"`

	// Status is the current notification lifecycle state.
	Status IncidentStatus `json:"status"`
	// Attempts is the number of delivery attempts made so far.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent delivery error message, if any.
	LastError string `json:"-"`

	// PublishedAt is the publication time reported by the feed.
	PublishedAt time.Time `json:"publishedAt"`
	// CreatedAt is when the incident was first recorded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the incident was last updated (e.g. status changed).
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the incident was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}
