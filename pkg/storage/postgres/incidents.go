package postgres

import (
	"context"
	"fmt"
	"mirrorbot/pkg/domain"
	"mirrorbot/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	incidentsTable = "incidents"
)

// StoreIncidents inserts the given incidents. The insert carries ON CONFLICT
// DO NOTHING on the external ID, so rows for already seen alerts are skipped
// and only the genuinely new rows come back.
func (p *PgSQL) StoreIncidents(ctx context.Context, incidents ...domain.Incident) ([]domain.Incident, error) {
	if len(incidents) == 0 {
		return nil, nil
	}

	rows := domainIncidentsToPg(incidents)

	var stored []PgIncident
	if err := p.Builder.Insert(incidentsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Returning(&PgIncident{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store incidents into pg: %w", err)
	}

	return pgIncidentsToDomain(stored), nil
}

// UpdateIncidentByID updates a single incident, ignoring soft-deleted rows.
// Attempts is incremented by 1 and updated_at set on every call. When the
// update asks for the Failed status with MaxAttempts > 0, the status only
// changes once attempts after increment reach that threshold.
func (p *PgSQL) UpdateIncidentByID(ctx context.Context,
	id domain.IncidentID,
	updates storage.IncidentUpdates) (*domain.Incident, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		if updates.Status == domain.IncidentStatusFailed && updates.MaxAttempts > 0 {
			rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
				updates.MaxAttempts,
				string(domain.IncidentStatusFailed))
		} else {
			rec["status"] = string(updates.Status)
		}
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// empty string clears the stored error
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgIncident
	found, err := p.Builder.Update(incidentsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgIncident{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update incident in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// IncidentByID fetches an incident by its ID, excluding soft-deleted rows.
func (p *PgSQL) IncidentByID(ctx context.Context, id domain.IncidentID) (*domain.Incident, error) {
	var row PgIncident
	found, err := p.Builder.From(incidentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch incident by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteIncident soft deletes the incident by setting its deleted_at
// timestamp, returning the deleted record or nil when nothing matched.
func (p *PgSQL) DeleteIncident(ctx context.Context, id domain.IncidentID) (*domain.Incident, error) {
	var row PgIncident
	found, err := p.Builder.Update(incidentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgIncident{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete incident in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Incidents returns a page of incidents ordered by created_at DESC, id DESC,
// optionally filtered by status and bounded by a created_at cursor.
func (p *PgSQL) Incidents(ctx context.Context,
	status domain.IncidentStatus,
	cursor time.Time,
	limit uint) (storage.IncidentPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra row to learn whether there is a next page
	fetch := limit + 1
	ds := p.Builder.From(incidentsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgIncident
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.IncidentPage{}, fmt.Errorf("could not fetch incidents from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.IncidentPage{
		Incidents:  pgIncidentsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// PendingIncidentCount counts live incidents still awaiting notification.
func (p *PgSQL) PendingIncidentCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(incidentsTable).
		Where(
			goqu.I("status").Eq(string(domain.IncidentStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending incidents: %w", err)
	}

	return count, nil
}
