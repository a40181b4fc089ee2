package v1handler_test

import (
	"context"
	"errors"
	"mirrorbot/internal/api/handler/v1handler"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// the handlers log through the global logger, so it must exist
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "plain error maps to internal",
			err:         errors.New("boom"),
			wantStatus:  500,
			wantCode:    serrors.ErrInternal.Error(),
			wantMessage: "internal error",
		},
		{
			name:        "kind sentinel passed directly",
			err:         serrors.ErrNotFound,
			wantStatus:  404,
			wantCode:    serrors.ErrNotFound.Error(),
			wantMessage: "resource not found",
		},
		{
			name:        "semantic error keeps its message",
			err:         serrors.With(serrors.ErrBadRequest, "invalid payload: missing text"),
			wantStatus:  400,
			wantCode:    serrors.ErrBadRequest.Error(),
			wantMessage: "invalid payload: missing text",
		},
		{
			// the wrapped cause must not leak into the response body
			name:        "wrapped cause stays internal",
			err:         serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			wantStatus:  401,
			wantCode:    serrors.ErrUnauthorized.Error(),
			wantMessage: "unauthorized",
		},
		{
			name:        "rate limited",
			err:         serrors.KindOnly(serrors.ErrRateLimited),
			wantStatus:  429,
			wantCode:    serrors.ErrRateLimited.Error(),
			wantMessage: "rate limited",
		},
		{
			name:        "kind only internal",
			err:         serrors.KindOnly(serrors.ErrInternal),
			wantStatus:  500,
			wantCode:    serrors.ErrInternal.Error(),
			wantMessage: "internal error",
		},
		{
			name:        "unavailable upstream",
			err:         serrors.With(serrors.ErrUnavailable, "feed is down"),
			wantStatus:  503,
			wantCode:    serrors.ErrUnavailable.Error(),
			wantMessage: "feed is down",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(ctx, tc.err)
			require.NotNil(t, res)
			require.Equal(t, tc.wantStatus, res.StatusCode)
			require.Equal(t, tc.wantCode, res.Response.Code)
			require.Equal(t, tc.wantMessage, res.Response.Message)
		})
	}
}
