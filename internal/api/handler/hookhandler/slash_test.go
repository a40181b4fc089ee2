package hookhandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"mirrorbot/internal/api/handler/hookhandler"
	"mirrorbot/internal/rewrite"
	"mirrorbot/pkg/logger"
)

const testToken = "sekret"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newHookHandler() *hookhandler.Handler {
	return hookhandler.New(rewrite.New(nil), hookhandler.Options{
		Token:    testToken,
		Revision: "abc123",
	})
}

// postSlash sends a slash-command request. Empty header values are left unset
// so the presence checks can be exercised.
func postSlash(contentType string, authorization string, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/nit", strings.NewReader(form))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	newHookHandler().HandleSlash(w, req)

	return w
}

type slashBody struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

func decodeSlash(t *testing.T, w *httptest.ResponseRecorder) slashBody {
	t.Helper()

	var body slashBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return body
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}

	return body.Error
}

func TestHandleSlash_RewritesTextInChannel(t *testing.T) {
	form := url.Values{"text": {"https://twitter.com/user/status/1?s=20"}}.Encode()
	w := postSlash("application/x-www-form-urlencoded", "Token "+testToken, form)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}

	body := decodeSlash(t, w)
	if body.ResponseType != "in_channel" {
		t.Fatalf("response_type = %q", body.ResponseType)
	}
	want := "https://nitter.net/user/status/1?s=20 ([source](https://twitter.com/user/status/1?s=20))"
	if body.Text != want {
		t.Fatalf("text = %q, want %q", body.Text, want)
	}
}

func TestHandleSlash_BlankTextEphemeral(t *testing.T) {
	form := url.Values{"text": {"   "}}.Encode()
	w := postSlash("application/x-www-form-urlencoded", "Token "+testToken, form)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := decodeSlash(t, w)
	if body.ResponseType != "ephemeral" {
		t.Fatalf("response_type = %q", body.ResponseType)
	}
	if body.Text != "You need to supply a URL" {
		t.Fatalf("text = %q", body.Text)
	}
}

func TestHandleSlash_MissingTextFieldEphemeral(t *testing.T) {
	w := postSlash("application/x-www-form-urlencoded", "Token "+testToken, "channel_id=c1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeSlash(t, w); body.ResponseType != "ephemeral" {
		t.Fatalf("response_type = %q", body.ResponseType)
	}
}

func TestHandleSlash_MissingContentType(t *testing.T) {
	w := postSlash("", "Token "+testToken, "text=hi")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w); got != "Content-Type header not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleSlash_MissingAuthorization(t *testing.T) {
	w := postSlash("application/x-www-form-urlencoded", "", "text=hi")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w); got != "Authorization header not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleSlash_HeaderPresenceCheckedBeforeContentType(t *testing.T) {
	// A wrong content type with no Authorization header still reports the
	// missing header first.
	w := postSlash("application/json", "", "text=hi")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w); got != "Authorization header not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleSlash_WrongContentType(t *testing.T) {
	w := postSlash("application/json", "Token "+testToken, "text=hi")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w); got != "Bad request" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleSlash_WrongToken(t *testing.T) {
	w := postSlash("application/x-www-form-urlencoded", "Token nope", "text=hi")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := decodeError(t, w); got != "Not authorised" {
		t.Fatalf("error = %q", got)
	}
}

func TestHandleSlash_GetRendersNotFoundPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nit", nil)
	w := httptest.NewRecorder()
	newHookHandler().HandleSlash(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
}
