package rewrite_test

import (
	"mirrorbot/internal/rewrite"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRule_Matches(t *testing.T) {
	rule := rewrite.Rule{MatchHostSuffix: "twitter.com", ReplacementHost: "nitter.net"}

	testCases := []struct {
		host string
		want bool
	}{
		{host: "twitter.com", want: true},
		{host: "mobile.twitter.com", want: true},
		{host: "a.b.twitter.com", want: true},
		{host: "TWITTER.com", want: true},
		{host: "Mobile.Twitter.Com", want: true},
		{host: "eviltwitter.com", want: false},
		{host: "eviltwitter.com.evil.net", want: false},
		{host: "twitter.com.evil.net", want: false},
		{host: "twitter.org", want: false},
		{host: "nitter.net", want: false},
		{host: "", want: false},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, rule.Matches(tc.host), "host %q", tc.host)
	}
}

func TestDefaultRules(t *testing.T) {
	rules := rewrite.DefaultRules()
	require.Len(t, rules, 2)
	require.Equal(t, rewrite.Rule{MatchHostSuffix: "twitter.com", ReplacementHost: "nitter.net"}, rules[0])
	require.Equal(t, rewrite.Rule{MatchHostSuffix: "medium.com", ReplacementHost: "scribe.rip"}, rules[1])
}
