package remote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: "''"},
		{in: "/srv/www/app/releases/20240101000000_1.2.3", want: "/srv/www/app/releases/20240101000000_1.2.3"},
		{in: "deploy@web-1:22", want: "deploy@web-1:22"},
		{in: "with space", want: "'with space'"},
		{in: "v1^{commit}", want: "'v1^{commit}'"},
		{in: "it's", want: `'it'"'"'s'`},
		{in: "$(rm -rf /)", want: "'$(rm -rf /)'"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Quote(tc.in), "Quote(%q)", tc.in)
	}
}

func TestQuoteAll(t *testing.T) {
	require.Equal(t, "ln -s 'a b' c", "ln -s "+QuoteAll("a b", "c"))
	require.Equal(t, "", QuoteAll())
}

func TestCommandLine(t *testing.T) {
	require.Equal(t, "ls", commandLine("", "ls"))
	require.Equal(t, "cd '/srv/my app' && ls", commandLine("/srv/my app", "ls"))
}
