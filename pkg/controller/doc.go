// Package controller contains the HTTP middlewares and helper handlers used
// by the API server.
//
// Provided middlewares:
//   - WithCORS: adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: attaches a request-scoped logger and request ID to the
//     context and writes an access log entry.
//   - WithMetrics: records request count and latency on an OpenTelemetry meter.
//
// Provided helpers:
//   - PprofMux: returns a ServeMux exposing net/http/pprof handlers.
package controller
