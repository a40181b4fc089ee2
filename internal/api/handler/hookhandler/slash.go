package hookhandler

import (
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/mattermost"
	"net/http"
	"strings"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const formContentType = "application/x-www-form-urlencoded"

// HandleSlash answers a Mattermost slash command. The command's text is run
// through the rewriter and posted back into the channel; blank text gets an
// ephemeral usage hint instead.
//
// Request validation follows the behavior slash-command registrations have
// relied on since the first deployment: header problems are reported as JSON
// errors, while a wrong method renders the regular 404 page.
func (h Handler) HandleSlash(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderNotFound(w)

		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		h.writeJSONError(w, http.StatusBadRequest, "Content-Type header not found")

		return
	}

	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		h.writeJSONError(w, http.StatusBadRequest, "Authorization header not found")

		return
	}

	if contentType != formContentType {
		h.writeJSONError(w, http.StatusBadRequest, "Bad request")

		return
	}

	if authorization != "Token "+h.options.Token {
		h.writeJSONError(w, http.StatusUnauthorized, "Not authorised")

		return
	}

	if err := r.ParseForm(); err != nil {
		logger.Error(r.Context(), "could not parse slash command form", zap.Error(err))
		h.writeJSONError(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	text := r.PostForm.Get("text")
	if strings.TrimSpace(text) == "" {
		h.writeSlashResponse(w, mattermost.SlashResponse{
			ResponseType: mattermost.ResponseTypeEphemeral,
			Text:         "You need to supply a URL",
		})

		return
	}

	h.writeSlashResponse(w, mattermost.SlashResponse{
		ResponseType: mattermost.ResponseTypeInChannel,
		Text:         h.rewriter.Rewrite(text),
	})
}

func (h Handler) writeSlashResponse(w http.ResponseWriter, res mattermost.SlashResponse) {
	e := &jx.Encoder{}
	res.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(e.Bytes())
}

func (h Handler) writeJSONError(w http.ResponseWriter, statusCode int, msg string) {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(e.Bytes())
}
