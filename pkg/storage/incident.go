package storage

import (
	"context"
	"mirrorbot/pkg/domain"
	"time"
)

// IncidentUpdates describes the optional fields applied to an incident during
// an update. Attempts is always incremented by 1 and updated_at set
// automatically; only the fields provided here change beyond that.
type IncidentUpdates struct {
	// Status is the new status to set. An empty value leaves the status
	// unchanged.
	Status domain.IncidentStatus
	// LastError, when provided, sets the last error text. An empty string
	// value clears the stored error (sets it to NULL).
	LastError *string
	// MaxAttempts, when > 0 and Status is Failed, only moves the incident to
	// Failed once the attempts after increment reach this threshold. Below
	// the threshold the status is left unchanged so the incident stays
	// eligible for another notification attempt.
	MaxAttempts int
}

// IncidentPage groups a page of incidents together with an optional
// NextCursor used for pagination.
type IncidentPage struct {
	// Incidents contains the current page of records, newest first.
	Incidents []domain.Incident
	// NextCursor is the created_at value to pass as the cursor for the next
	// page. It is nil when there is no next page.
	NextCursor *time.Time
}

// IncidentStorage defines CRUD and query operations for incidents.
// Implementations must exclude soft-deleted rows from every read and update.
type IncidentStorage interface {
	// StoreIncidents inserts the given incidents, silently skipping any whose
	// external ID has been stored before, and returns only the newly inserted
	// rows as they exist in the database (including generated fields).
	StoreIncidents(ctx context.Context, incidents ...domain.Incident) ([]domain.Incident, error)
	// UpdateIncidentByID updates a single incident by its ID and returns the
	// updated row, or nil when no live row has that ID.
	UpdateIncidentByID(ctx context.Context, ID domain.IncidentID, updates IncidentUpdates) (*domain.Incident, error)
	// IncidentByID fetches an incident by its ID. Returns nil when not found.
	IncidentByID(ctx context.Context, ID domain.IncidentID) (*domain.Incident, error)
	// DeleteIncident soft deletes the incident with the given ID and returns
	// the deleted row, or nil if it was not found.
	DeleteIncident(ctx context.Context, ID domain.IncidentID) (*domain.Incident, error)
	// Incidents returns a page of incidents created before the optional
	// cursor time, newest first, limited by limit. If status is non-empty,
	// only records with that status are returned.
	Incidents(ctx context.Context,
		status domain.IncidentStatus,
		cursor time.Time,
		limit uint) (IncidentPage, error)
	// PendingIncidentCount returns the number of incidents still awaiting
	// notification.
	PendingIncidentCount(ctx context.Context) (int64, error)
}
