package hookhandler

import (
	_ "embed"
	"net/http"
)

var (
	//go:embed assets/home.html
	homeHTML string
	//go:embed assets/style.css
	styleCSS string
	//go:embed assets/not_found.html
	notFoundHTML string
)

// HandleHome serves the home page. It is mounted as the fallback route, so
// anything that is not exactly GET / renders the 404 page.
func (h Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		h.renderNotFound(w)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.home))
}

// HandleStyle serves the stylesheet shared by the status pages.
func (h Handler) HandleStyle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(styleCSS))
}

func (h Handler) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundHTML))
}
