// Package hookhandler implements the public surface of the bot: the
// Mattermost slash-command endpoint plus the small status pages served next
// to it. Unlike the v1 API it authenticates with the shared token Mattermost
// sends along, not with JWTs.
package hookhandler

import (
	"mirrorbot/internal/config"
	"mirrorbot/internal/rewrite"
	"strings"
)

// Options contains the configuration for the hook Handler.
type Options struct {
	// Token is the shared secret expected in the Authorization header of
	// slash-command requests.
	Token string
	// Revision is the build revision shown on the home page.
	Revision string
}

// NewOptions returns hook handler options based on the given configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Token:    cfg.Hook.Token,
		Revision: cfg.Revision,
	}
}

// Handler serves the slash-command endpoint and the status pages.
type Handler struct {
	options  Options
	rewriter *rewrite.Rewriter

	// home is the home page with the revision placeholder already filled in.
	home string
}

// New returns a Handler that rewrites slash-command text with the given
// rewriter.
func New(rewriter *rewrite.Rewriter, options Options) *Handler {
	return &Handler{
		options:  options,
		rewriter: rewriter,
		home:     strings.ReplaceAll(homeHTML, "$rev$", options.Revision),
	}
}
