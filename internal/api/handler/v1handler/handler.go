// Package v1handler implements the authenticated v1 operator API: rewriting
// text on demand and inspecting the incidents recorded by the feed sweeps.
package v1handler

import (
	"context"
	"errors"
	"mirrorbot/internal/alerts"
	"mirrorbot/internal/rewrite"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// DefaultLimit is the page size used when a list request does not ask for one.
const DefaultLimit = 20

// Deps bundles the collaborators the v1 operations call into.
type Deps struct {
	// Alerts serves the incident read and delete operations.
	Alerts alerts.Service
	// Rewriter serves the text rewrite operation.
	Rewriter *rewrite.Rewriter
}

// Handler implements the v1 API operations.
type Handler struct {
	deps Deps
}

// New returns a Handler backed by the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 route table with every operation behind bearer auth.
func (h Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/rewrite", h.RewriteText)
	mux.HandleFunc("GET /v1/incidents", h.ListIncidents)
	mux.HandleFunc("GET /v1/incidents/{id}", h.GetIncident)
	mux.HandleFunc("DELETE /v1/incidents/{id}", h.DeleteIncident)

	return sec.WithBearerAuth(h, mux)
}

// Response is the error envelope returned by every failed v1 request.
type Response struct {
	// Code is the machine readable error kind, e.g. "NOT_FOUND".
	Code string
	// Message is the human readable description.
	Message string
}

// Encode writes r to e as a JSON object.
func (r Response) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs the error envelope with the HTTP status it is sent
// with.
type ErrorStatusCode struct {
	StatusCode int
	Response   Response
}

// NewError converts err into the envelope and status code sent to the
// client. Semantic kinds map onto their HTTP statuses; anything unclassified
// is reported as an internal error without leaking its message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	logger.Error(ctx, err.Error())

	kind := serrors.ErrInternal
	var k serrors.Kind
	if errors.As(err, &k) {
		kind = k
	}

	var msg string
	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		msg = sErr.Message()
	}

	statusCode, fallback := statusForKind(kind)
	if msg == "" {
		msg = fallback
	}

	return &ErrorStatusCode{
		StatusCode: statusCode,
		Response:   Response{Code: kind.Error(), Message: msg},
	}
}

func statusForKind(k serrors.Kind) (int, string) {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound, "resource not found"
	case serrors.ErrBadRequest:
		return http.StatusBadRequest, "bad request"
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests, "rate limited"
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable, "service unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h Handler) writeJSON(w http.ResponseWriter, statusCode int, encode func(e *jx.Encoder)) {
	e := &jx.Encoder{}
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(e.Bytes())
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	h.writeJSON(w, res.StatusCode, res.Response.Encode)
}
