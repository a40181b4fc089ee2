package rewrite

import "strings"

// Rule maps a host suffix onto the mirror host that should serve it instead.
type Rule struct {
	MatchHostSuffix string // MatchHostSuffix is the host suffix to look for, e.g. "twitter.com".
	ReplacementHost string // ReplacementHost is the mirror host, e.g. "nitter.net".
}

// Matches reports whether host equals the rule's suffix or is a subdomain of
// it. Matching is case-insensitive. A host that merely ends with the suffix
// text without a dot boundary ("eviltwitter.com") does not match.
func (r Rule) Matches(host string) bool {
	host = strings.ToLower(host)
	suffix := strings.ToLower(r.MatchHostSuffix)

	return host == suffix || strings.HasSuffix(host, "."+suffix)
}

// DefaultRules returns the built-in rule table: Twitter to Nitter and Medium
// to Scribe. The suffixes are disjoint, so at most one rule can match any
// given host.
func DefaultRules() []Rule {
	return []Rule{
		{MatchHostSuffix: "twitter.com", ReplacementHost: "nitter.net"},
		{MatchHostSuffix: "medium.com", ReplacementHost: "scribe.rip"},
	}
}
