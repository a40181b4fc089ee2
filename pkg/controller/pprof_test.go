package controller_test

import (
	"mirrorbot/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	// profile is excluded: it blocks for the sampling duration
	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/symbol"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil))

		if res := rec.Result(); res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status %d, want 200", path, res.StatusCode)
		}
	}
}

func TestPprofMux_IndexContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/", nil))

	if ct := rec.Result().Header.Get("Content-Type"); ct == "" {
		t.Error("index response has no Content-Type")
	}
}
