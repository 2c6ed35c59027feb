package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: TruncateString never exceeds the limit
func TestProperty_TruncateStringBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("Truncated string fits the limit", prop.ForAll(
		func(s string, maxLen int) bool {
			limit := maxLen
			if limit < 0 {
				limit = 0
			}
			return len(TruncateString(s, maxLen)) <= limit
		},
		gen.AnyString(),
		gen.IntRange(-10, 100),
	))

	properties.Property("Short strings pass through unchanged", prop.ForAll(
		func(s string) bool {
			return TruncateString(s, len(s)) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Property: Padding produces at least the requested width
func TestProperty_PaddingWidth(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("PadRight reaches the width and keeps the prefix", prop.ForAll(
		func(s string, width int) bool {
			padded := PadRight(s, width)
			return len(padded) >= width && strings.HasPrefix(padded, s)
		},
		gen.AnyString(),
		gen.IntRange(0, 60),
	))

	properties.Property("PadLeft reaches the width and keeps the suffix", prop.ForAll(
		func(s string, width int) bool {
			padded := PadLeft(s, width)
			return len(padded) >= width && strings.HasSuffix(padded, s)
		},
		gen.AnyString(),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}
