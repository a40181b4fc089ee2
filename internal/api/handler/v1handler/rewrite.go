package v1handler

import (
	"io"
	"mirrorbot/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// RewriteRequest is the body of the rewrite operation.
type RewriteRequest struct {
	// Text is the free form message to scan for mirror candidates.
	Text string
}

// Decode reads r from d.
func (r *RewriteRequest) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "text":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"text\"")
			}
			r.Text = v

			return nil
		default:
			return d.Skip()
		}
	})
}

// RewriteResponse is the body returned by the rewrite operation.
type RewriteResponse struct {
	// Text is the input with every matching URL replaced by its mirror.
	Text string
}

// Encode writes r to e as a JSON object.
func (r RewriteResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("text")
	e.Str(r.Text)
	e.ObjEnd()
}

// RewriteText runs the given text through the mirror rewriter and returns the
// result. The operation never fails on its input: text without rewritable
// URLs comes back unchanged.
func (h Handler) RewriteText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	var req RewriteRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	h.writeJSON(w, http.StatusOK, RewriteResponse{Text: h.deps.Rewriter.Rewrite(req.Text)}.Encode)
}
