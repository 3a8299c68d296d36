package matching

import (
	"regexp"
	"strings"
)

// Leading weight/volume prefix like "6oz" or "10 oz." — anchored at the start
var ozPrefixRegex = regexp.MustCompile(`^\d+ ?oz\.? ?`)

// NormalizeOptions controls how raw item names are canonicalized before
// comparison.
//
// The two import flows disagree on portion prefixes: the par-sheet flow
// strips "Half"/"Full", the sales-report flow keeps them because "Half
// Caesar" and "Caesar Salad" are distinct catalog items. Product never
// documented why, so callers must state which flow they are in instead of
// inheriting a hardcoded policy.
type NormalizeOptions struct {
	StripPortionPrefix bool
}

// Normalize canonicalizes a raw extracted item name using the default
// policy: portion prefixes are preserved.
func Normalize(raw string) string {
	return NormalizeWith(raw, NormalizeOptions{})
}

// NormalizeWith lowercases the input, strips a leading numeric-oz prefix,
// optionally strips a leading "half "/"full " portion prefix, and collapses
// whitespace. It is pure and idempotent for any fixed options.
func NormalizeWith(raw string, opts NormalizeOptions) string {
	s := strings.ToLower(raw)
	s = strings.Join(strings.Fields(s), " ")

	// Strip prefixes until stable so normalizing twice changes nothing
	// (e.g. "half 6oz ribeye" with StripPortionPrefix).
	for {
		next := ozPrefixRegex.ReplaceAllString(s, "")
		if opts.StripPortionPrefix {
			if rest, ok := strings.CutPrefix(next, "half "); ok {
				next = rest
			} else if rest, ok := strings.CutPrefix(next, "full "); ok {
				next = rest
			}
		}
		if next == s {
			break
		}
		s = next
	}

	return strings.TrimSpace(s)
}
