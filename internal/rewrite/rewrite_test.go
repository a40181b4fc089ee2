package rewrite_test

import (
	"mirrorbot/internal/rewrite"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewrite_Fixtures(t *testing.T) {
	rw := rewrite.New(nil)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "twitter desktop",
			input: "https://twitter.com/wezm",
			want:  "https://nitter.net/wezm ([source](https://twitter.com/wezm))",
		},
		{
			name:  "twitter without path",
			input: "https://twitter.com",
			want:  "https://nitter.net ([source](https://twitter.com))",
		},
		{
			name:  "twitter mobile subdomain keeps query",
			input: "https://mobile.twitter.com/wezm/status/123?s=20",
			want:  "https://nitter.net/wezm/status/123?s=20 ([source](https://mobile.twitter.com/wezm/status/123?s=20))",
		},
		{
			name:  "twitter status with tracking params",
			input: "https://mobile.twitter.com/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg",
			want:  "https://nitter.net/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg ([source](https://mobile.twitter.com/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg))",
		},
		{
			name:  "medium to scribe",
			input: "https://medium.com/swlh/make-your-raspberry-pi-file-system-read-only-raspbian-buster-c558694de79",
			want:  "https://scribe.rip/swlh/make-your-raspberry-pi-file-system-read-only-raspbian-buster-c558694de79 ([source](https://medium.com/swlh/make-your-raspberry-pi-file-system-read-only-raspbian-buster-c558694de79))",
		},
		{
			name:  "medium subdomain collapses to mirror root",
			input: "https://jxxcarlson.medium.com/post-1",
			want:  "https://scribe.rip/post-1 ([source](https://jxxcarlson.medium.com/post-1))",
		},
		{
			name:  "fragment preserved",
			input: "https://medium.com/post#section-2",
			want:  "https://scribe.rip/post#section-2 ([source](https://medium.com/post#section-2))",
		},
		{
			name:  "port preserved",
			input: "https://twitter.com:8443/wezm",
			want:  "https://nitter.net:8443/wezm ([source](https://twitter.com:8443/wezm))",
		},
		{
			name:  "http scheme kept",
			input: "http://twitter.com/wezm",
			want:  "http://nitter.net/wezm ([source](http://twitter.com/wezm))",
		},
		{
			name:  "uppercase host still matches",
			input: "https://TWITTER.com/wezm",
			want:  "https://nitter.net/wezm ([source](https://TWITTER.com/wezm))",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, rw.Rewrite(tc.input))
		})
	}
}

func TestRewrite_MultipleMatches(t *testing.T) {
	rw := rewrite.New(nil)

	// The bare "twitter.com" word has no scheme and must stay untouched
	// while both full URLs are rewritten independently, left to right.
	got := rw.Rewrite("check twitter.com https://twitter.com/a and https://twitter.com/b")
	require.Equal(t,
		"check twitter.com https://nitter.net/a ([source](https://twitter.com/a))"+
			" and https://nitter.net/b ([source](https://twitter.com/b))",
		got)
}

func TestRewrite_MixedProviders(t *testing.T) {
	rw := rewrite.New(nil)

	got := rw.Rewrite("Here are some things from twitter.com" +
		" https://twitter.com/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg" +
		" and Medium https://jxxcarlson.medium.com/lambda-calculus-an-elm-cli-fd537071db2b")
	require.Equal(t, "Here are some things from twitter.com"+
		" https://nitter.net/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg"+
		" ([source](https://twitter.com/wezm/status/1323096439602339840?s=20&t=Zper7b85RVlpWoTKKJDkbg))"+
		" and Medium https://scribe.rip/lambda-calculus-an-elm-cli-fd537071db2b"+
		" ([source](https://jxxcarlson.medium.com/lambda-calculus-an-elm-cli-fd537071db2b))",
		got)
}

func TestRewrite_NoTLDNeverMatches(t *testing.T) {
	rw := rewrite.New(nil)

	require.Equal(t, "https://twitter", rw.Rewrite("https://twitter"))
	require.Equal(t, "see https://twitter for more", rw.Rewrite("see https://twitter for more"))
}

func TestRewrite_UnmatchedHostsUntouched(t *testing.T) {
	rw := rewrite.New(nil)

	for _, text := range []string{
		"https://eviltwitter.com/wezm",
		"https://eviltwitter.com.evil.net/wezm",
		"https://example.com/twitter.com",
		"https://x.com/wezm",
	} {
		require.Equal(t, text, rw.Rewrite(text), "input %q", text)
	}
}

func TestRewrite_NonURLTextUntouched(t *testing.T) {
	rw := rewrite.New(nil)

	for _, text := range []string{
		"",
		"no links here",
		"twitter.com medium.com nitter.net",
		"ftp://twitter.com/wezm",
		"mention of http but no link",
	} {
		require.Equal(t, text, rw.Rewrite(text), "input %q", text)
	}
}

func TestRewrite_UnparseableCandidatePassesThrough(t *testing.T) {
	rw := rewrite.New(nil)

	// The scanner accepts this shape but the non-numeric port fails URL
	// parsing, so the candidate must survive unchanged.
	in := "broken https://twitter.com:badport/x link"
	require.Equal(t, in, rw.Rewrite(in))
}

func TestRewrite_TrailingParenthesisConsumed(t *testing.T) {
	rw := rewrite.New(nil)

	// Parentheses are in the permissive trailing class, so a closing paren
	// after the path becomes part of the matched URL.
	got := rw.Rewrite("(https://twitter.com/wezm)")
	require.Equal(t, "(https://nitter.net/wezm) ([source](https://twitter.com/wezm)))", got)
}

func TestRewrite_CustomRules(t *testing.T) {
	rules := append(rewrite.DefaultRules(), rewrite.Rule{MatchHostSuffix: "x.com", ReplacementHost: "nitter.net"})
	rw := rewrite.New(rules)

	got := rw.Rewrite("https://x.com/nealagarwal/status/1691095252952834048?s=46&t=OJUN8AoB2f1zmJVHufidVg")
	require.Equal(t,
		"https://nitter.net/nealagarwal/status/1691095252952834048?s=46&t=OJUN8AoB2f1zmJVHufidVg"+
			" ([source](https://x.com/nealagarwal/status/1691095252952834048?s=46&t=OJUN8AoB2f1zmJVHufidVg))",
		got)

	// Default rules remain in effect alongside the extra one.
	require.Equal(t,
		"https://nitter.net/wezm ([source](https://twitter.com/wezm))",
		rw.Rewrite("https://twitter.com/wezm"))
}

func TestNew_EmptyRulesFallBackToDefaults(t *testing.T) {
	require.Equal(t,
		rewrite.New(nil).Rewrite("https://twitter.com/wezm"),
		rewrite.New([]rewrite.Rule{}).Rewrite("https://twitter.com/wezm"))
}
