package postgres

import (
	"database/sql"
	"mirrorbot/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgIncident is the database representation of a domain.Incident. Columns
// filled in by the database carry the goqu skipinsert tag.
type PgIncident struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	ExternalID string    `db:"external_id"`

	Category string          `db:"category"`
	Title    string          `db:"title"`
	Content  string          `db:"content"`
	Lat      sql.NullFloat64 `db:"lat"`
	Long     sql.NullFloat64 `db:"long"`

	Status    string         `db:"status"`
	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	PublishedAt sql.NullTime `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt   sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgIncident) ToDomain() *domain.Incident {
	var point *domain.LatLong
	if p.Lat.Valid && p.Long.Valid {
		point = &domain.LatLong{Lat: p.Lat.Float64, Long: p.Long.Float64}
	}

	return &domain.Incident{
		ID:          domain.IncidentID(p.ID),
		ExternalID:  p.ExternalID,
		Category:    p.Category,
		Title:       p.Title,
		Content:     p.Content,
		Point:       point,
		Status:      domain.IncidentStatus(p.Status),
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		PublishedAt: p.PublishedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgIncident) FromDomain(incident domain.Incident) {
	*p = PgIncident{
		ID:         uuid.UUID(incident.ID),
		ExternalID: incident.ExternalID,
		Category:   incident.Category,
		Title:      incident.Title,
		Content:    incident.Content,
		Status:     string(incident.Status),
		Attempts:   incident.Attempts,
		LastError: sql.NullString{
			String: incident.LastError,
			Valid:  incident.LastError != "",
		},
		PublishedAt: sql.NullTime{
			Time:  incident.PublishedAt,
			Valid: !incident.PublishedAt.IsZero(),
		},
		CreatedAt: incident.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  incident.UpdatedAt,
			Valid: !incident.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  incident.DeletedAt,
			Valid: !incident.DeletedAt.IsZero(),
		},
	}
	if incident.Point != nil {
		p.Lat = sql.NullFloat64{Float64: incident.Point.Lat, Valid: true}
		p.Long = sql.NullFloat64{Float64: incident.Point.Long, Valid: true}
	}
}

func domainIncidentsToPg(incidents []domain.Incident) []PgIncident {
	out := make([]PgIncident, len(incidents))
	for i := range out {
		out[i].FromDomain(incidents[i])
	}

	return out
}

func pgIncidentsToDomain(incidents []PgIncident) []domain.Incident {
	out := make([]domain.Incident, 0, len(incidents))
	for _, incident := range incidents {
		out = append(out, *incident.ToDomain())
	}

	return out
}
