package cli

import "testing"

func TestTruncateString(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a long watchlist reason", 10, "a long ..."},
		{"abc", 2, "ab"},
		{"anything", 0, ""},
		{"anything", -5, ""},
		{"", -1, ""},
	}
	for _, c := range cases {
		if got := TruncateString(c.in, c.maxLen); got != c.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}
}
