package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"mirrorbot/internal/api/handler/v1handler"
	mockalerts "mirrorbot/internal/alerts/mock"
	"mirrorbot/pkg/domain"
	"mirrorbot/pkg/serrors"
)

// sampleIncident constructs a minimal domain.Incident for tests.
func sampleIncident(externalID string) domain.Incident {
	id := uuid.New()

	return domain.Incident{
		ID:          domain.IncidentID(id),
		ExternalID:  externalID,
		Category:    "Watch and Act",
		Title:       "Bushfire near Mount Coot-tha",
		Content:     "Stay informed.",
		Status:      domain.IncidentStatusPending,
		Attempts:    1,
		PublishedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

type incidentListBody struct {
	Items []struct {
		ID         string `json:"id"`
		ExternalID string `json:"externalId"`
		Status     string `json:"status"`
	} `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

func TestHandler_ListIncidents_DefaultLimitAndCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockalerts.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Alerts: m})

	i1 := sampleIncident("qfes-1")
	i2 := sampleIncident("qfes-2")
	next := "cursor123"

	// default status zero-value and limit unset; expect DefaultLimit
	m.EXPECT().
		Incidents(gomock.Any(), domain.IncidentStatus(""), "", uint(v1handler.DefaultLimit)).
		Return([]domain.Incident{i1, i2}, next, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents", nil)
	w := httptest.NewRecorder()
	h.ListIncidents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body incidentListBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("items len = %d", len(body.Items))
	}
	if body.Items[0].ExternalID != "qfes-1" {
		t.Fatalf("externalId = %q", body.Items[0].ExternalID)
	}
	if body.NextCursor == nil || *body.NextCursor != next {
		t.Fatalf("expected next cursor %q, got %v", next, body.NextCursor)
	}
}

func TestHandler_ListIncidents_CustomParams_NoNextCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockalerts.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Alerts: m})

	m.EXPECT().
		Incidents(gomock.Any(), domain.IncidentStatusPending, "c0", uint(5)).
		Return([]domain.Incident{}, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents?status=PENDING&cursor=c0&limit=5", nil)
	w := httptest.NewRecorder()
	h.ListIncidents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body incidentListBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Items) != 0 {
		t.Fatalf("expected empty list")
	}
	if body.NextCursor != nil {
		t.Fatalf("next cursor should be absent when empty")
	}
}

func TestHandler_ListIncidents_InvalidStatus(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents?status=BOGUS", nil)
	w := httptest.NewRecorder()
	h.ListIncidents(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandler_ListIncidents_InvalidLimit(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents?limit=0", nil)
	w := httptest.NewRecorder()
	h.ListIncidents(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandler_GetIncident(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockalerts.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Alerts: m})

	incident := sampleIncident("qfes-9")
	incident.Point = &domain.LatLong{Lat: -27.5, Long: 153.0}
	id := uuid.UUID(incident.ID)

	m.EXPECT().Incident(gomock.Any(), incident.ID).Return(&incident, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	h.GetIncident(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		ID    string `json:"id"`
		Point *struct {
			Lat  float64 `json:"lat"`
			Long float64 `json:"long"`
		} `json:"point"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != id.String() {
		t.Fatalf("id = %q", body.ID)
	}
	if body.Point == nil || body.Point.Lat != -27.5 || body.Point.Long != 153.0 {
		t.Fatalf("point = %#v", body.Point)
	}
}

func TestHandler_GetIncident_InvalidID(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.GetIncident(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandler_GetIncident_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockalerts.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Alerts: m})

	id := uuid.New()
	m.EXPECT().
		Incident(gomock.Any(), domain.IncidentID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "incident not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	h.GetIncident(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Code != "NOT_FOUND" {
		t.Fatalf("code = %q", body.Code)
	}
}

func TestHandler_DeleteIncident(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockalerts.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Alerts: m})

	id := uuid.New()
	m.EXPECT().Delete(gomock.Any(), domain.IncidentID(id)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/incidents/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	h.DeleteIncident(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", w.Body.String())
	}
}
