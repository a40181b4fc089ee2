package alerts

import (
	"context"
	"mirrorbot/pkg/domain"
)

//go:generate mockgen -package mockalerts -source=interface.go -destination=mock/mockalerts.go *
type Service interface {
	Sweep(ctx context.Context) error
	Notify(ctx context.Context, ID domain.IncidentID) error
	Incidents(ctx context.Context,
		status domain.IncidentStatus,
		cursor string,
		limit uint) ([]domain.Incident, string, error)
	Incident(ctx context.Context, ID domain.IncidentID) (*domain.Incident, error)
	Delete(ctx context.Context, ID domain.IncidentID) error
}
