package controller

import "net/http"

// corsHeaders are attached to every response. The values are permissive on
// purpose: the service sits behind Mattermost and internal tooling, not
// arbitrary browsers.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Headers":     "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control",
	"Access-Control-Allow-Methods":     "POST, OPTIONS, GET, PUT, PATCH, DELETE",
}

// WithCORS attaches CORS headers to every response and answers OPTIONS
// preflight requests with 204 No Content without invoking the wrapped
// handler.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range corsHeaders {
			w.Header().Set(name, value)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
