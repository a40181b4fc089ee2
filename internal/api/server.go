// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the mirror bot service.
package api

import (
	_ "embed"
	"fmt"
	"mirrorbot/internal/api/handler/hookhandler"
	"mirrorbot/internal/api/handler/v1handler"
	"mirrorbot/internal/config"
	"mirrorbot/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec is the OpenAPI document served at /specs/v1.yaml and rendered by
// the Swagger playground.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds the server configuration. Zero duration values fall back to
// the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer authentication for the v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HookOptions configures the slash-command endpoint and the status pages.
	HookOptions hookhandler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout bounds reading an entire request including its body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout bounds reading the request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration
	// IdleTimeout bounds waiting for the next request on a kept-alive connection.
	IdleTimeout time.Duration
	// RequestTimeout caps handling of a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes caps the bytes read while parsing request headers.
	MaxHeaderBytes int
	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP settings of cfg onto server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HookOptions:       hookhandler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps carries everything the routes need. RiverUI is optional; when nil the
// queue UI is not mounted.
type Deps struct {
	v1handler.Deps

	RiverUI http.Handler
}

// NewServer assembles the HTTP server: the Prometheus scrape endpoint, the
// OpenAPI docs, the bearer-authenticated v1 routes, the slash-command
// endpoint with its status pages, the optional river queue UI and the pprof
// mux. The returned server applies metrics, CORS and logging middleware plus
// a request timeout around every route.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mp, err := newMeterProvider()
	if err != nil {
		return nil, err
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.Handler())
	mountDocs(mux)
	mux.Handle("/v1/", v1handler.New(deps.Deps).Routes(secHandler))

	// liveness probe
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// slash command and status pages
	hooks := hookhandler.New(deps.Rewriter, opts.HookOptions)
	mux.HandleFunc("/nit", hooks.HandleSlash)
	mux.HandleFunc("/style.css", hooks.HandleStyle)
	mux.HandleFunc("/", hooks.HandleHome)

	if deps.RiverUI != nil {
		mux.Handle("/riverui/", deps.RiverUI)
	}
	mux.Handle("/debug/pprof/", controller.PprofMux())

	withMetrics, err := controller.WithMetrics(mp.Meter("mirrorbot/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	// outermost first: logging wraps CORS wraps metrics wraps the mux
	handler := controller.WithLogger(controller.WithCORS(withMetrics(mux)))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// newMeterProvider builds an OpenTelemetry meter provider exporting through
// the default Prometheus registerer, so its instruments show up on the
// scrape endpoint alongside the plain Prometheus collectors.
func newMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// mountDocs serves the embedded OpenAPI document and its Swagger playground.
func mountDocs(mux *http.ServeMux) {
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New("Mirror Bot Service", "/specs/v1.yaml", "/v1/docs/"))
}
