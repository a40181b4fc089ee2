// Package rewrite implements the URL substitution engine. It scans free-form
// text for URL-shaped substrings, rewrites the host of every URL covered by a
// mirror rule, and appends a source annotation linking back to the original
// URL. Everything that is not a rewritten URL passes through byte-for-byte.
package rewrite

import (
	"fmt"
	"net/url"
	"regexp"
)

// urlPattern is a deliberately permissive URL detector. It requires a scheme
// and a host with at least one internal dot, then consumes any run of
// characters commonly found in paths, queries and fragments. Strict RFC 3986
// matching would regress on real chat messages, so it is not attempted.
var urlPattern = regexp.MustCompile(`https?://[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=]+`)

// Rewriter substitutes mirror hosts into URLs found in text. It holds an
// immutable rule table and is safe for concurrent use.
type Rewriter struct {
	rules []Rule
}

// New returns a Rewriter using the given rule table. With no rules it falls
// back to DefaultRules.
func New(rules []Rule) *Rewriter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	return &Rewriter{rules: append([]Rule(nil), rules...)}
}

// Rewrite scans text for URLs and replaces each one whose host matches a rule
// with "<mirror-url> ([source](<original-url>))", where the original URL is
// the matched substring character-for-character. Rewrite is total: candidates
// that fail structural parsing stay unchanged and no error is ever reported.
func (rw *Rewriter) Rewrite(text string) string {
	return urlPattern.ReplaceAllStringFunc(text, rw.replaceCandidate)
}

// replaceCandidate decides the fate of a single matched substring.
func (rw *Rewriter) replaceCandidate(candidate string) string {
	u, err := url.Parse(candidate)
	if err != nil {
		// URL-shaped but structurally invalid, e.g. a non-numeric port.
		return candidate
	}

	rule, ok := rw.lookup(u.Hostname())
	if !ok {
		return candidate
	}

	// Replace the whole host, so subdomains collapse to the mirror root.
	// Port, path, query and fragment are carried through unchanged.
	host := rule.ReplacementHost
	if port := u.Port(); port != "" {
		host += ":" + port
	}
	u.Host = host

	return fmt.Sprintf("%s ([source](%s))", u.String(), candidate)
}

func (rw *Rewriter) lookup(host string) (Rule, bool) {
	for _, rule := range rw.rules {
		if rule.Matches(host) {
			return rule, true
		}
	}

	return Rule{}, false
}
