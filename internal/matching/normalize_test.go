package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Ribeye Steak", "ribeye steak"},
		{"strips oz prefix", "6oz Ribeye Steak", "ribeye steak"},
		{"strips oz prefix with space and dot", "10 oz. Ribeye Steak", "ribeye steak"},
		{"oz prefix only at start", "Ribeye Steak 6oz", "ribeye steak 6oz"},
		{"collapses whitespace", "  Caesar   Salad \t", "caesar salad"},
		{"preserves half prefix", "Half Caesar", "half caesar"},
		{"preserves full prefix", "Full Rack Ribs", "full rack ribs"},
		{"empty input", "", ""},
		{"oz prefix alone", "6oz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeWithStripPortionPrefix(t *testing.T) {
	opts := NormalizeOptions{StripPortionPrefix: true}

	assert.Equal(t, "caesar", NormalizeWith("Half Caesar", opts))
	assert.Equal(t, "rack ribs", NormalizeWith("Full Rack Ribs", opts))
	assert.Equal(t, "ribeye", NormalizeWith("Half 6oz Ribeye", opts))

	// "half" embedded in a word is not a prefix
	assert.Equal(t, "halfmoon cookie", NormalizeWith("Halfmoon Cookie", opts))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"6oz Ribeye Steak",
		"Half Caesar",
		"  MIXED   Case\tName ",
		"10 oz. sirloin",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)

		opts := NormalizeOptions{StripPortionPrefix: true}
		stripped := NormalizeWith(in, opts)
		assert.Equal(t, stripped, NormalizeWith(stripped, opts), "input %q (strip)", in)
	}
}

func TestNormalizeIsCaseInvariant(t *testing.T) {
	inputs := []string{"6oz Ribeye Steak", "Half Caesar", "fish & chips"}

	for _, in := range inputs {
		assert.Equal(t, Normalize(in), Normalize(strings.ToUpper(in)), "input %q", in)
	}
}
