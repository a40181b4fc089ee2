package v1handler

import (
	"mirrorbot/pkg/domain"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/serrors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EncodeIncident writes in to e as a JSON object. Optional fields (location,
// feed timestamps) are omitted when unset.
func EncodeIncident(e *jx.Encoder, in *domain.Incident) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(uuid.UUID(in.ID).String())
	e.FieldStart("externalId")
	e.Str(in.ExternalID)
	e.FieldStart("category")
	e.Str(in.Category)
	e.FieldStart("title")
	e.Str(in.Title)
	e.FieldStart("content")
	e.Str(in.Content)
	if in.Point != nil {
		e.FieldStart("point")
		e.ObjStart()
		e.FieldStart("lat")
		e.Float64(in.Point.Lat)
		e.FieldStart("long")
		e.Float64(in.Point.Long)
		e.ObjEnd()
	}
	e.FieldStart("status")
	e.Str(string(in.Status))
	e.FieldStart("attempts")
	e.Int(int(in.Attempts)) //nolint: gosec
	if !in.PublishedAt.IsZero() {
		e.FieldStart("publishedAt")
		e.Str(in.PublishedAt.Format(time.RFC3339))
	}
	e.FieldStart("createdAt")
	e.Str(in.CreatedAt.Format(time.RFC3339))
	if !in.UpdatedAt.IsZero() {
		e.FieldStart("updatedAt")
		e.Str(in.UpdatedAt.Format(time.RFC3339))
	}
	e.ObjEnd()
}

// ListIncidents returns a page of recorded incidents, newest first. The page
// is filtered by the optional status query parameter and continued with the
// cursor returned by the previous page.
func (h Handler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	status := domain.IncidentStatus(q.Get("status"))
	switch status {
	case "", domain.IncidentStatusPending, domain.IncidentStatusNotified, domain.IncidentStatusFailed:
	default:
		h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid status %q", status))

		return
	}

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw))

			return
		}

		limit = uint(parsed)
	}

	incidents, nextCursor, err := h.deps.Alerts.Incidents(ctx, status, q.Get("cursor"), limit)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for i := range incidents {
			EncodeIncident(e, &incidents[i])
		}
		e.ArrEnd()
		if nextCursor != "" {
			e.FieldStart("nextCursor")
			e.Str(nextCursor)
		}
		e.ObjEnd()
	})
}

// GetIncident returns a single incident by ID.
func (h Handler) GetIncident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid incident ID"))

		return
	}

	incident, err := h.deps.Alerts.Incident(ctx, domain.IncidentID(id))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		EncodeIncident(e, incident)
	})
}

// DeleteIncident soft-deletes an incident so it no longer shows up in lists.
func (h Handler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid incident ID"))

		return
	}

	if err := h.deps.Alerts.Delete(ctx, domain.IncidentID(id)); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	logger.Info(ctx, "incident deleted",
		zap.String("incidentID", id.String()),
		zap.String("userID", uuid.UUID(GetUserIDFromContext(ctx)).String()))

	w.WriteHeader(http.StatusNoContent)
}
