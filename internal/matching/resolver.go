package matching

import "strings"

// Default thresholds. Both were tuned empirically against real uploads and
// are deliberately overridable instead of buried as magic numbers.
const (
	DefaultFuzzyThreshold   = 0.5
	DefaultOverlapThreshold = 0.7
)

// Confidence ranks how certain a name match is.
type Confidence string

const (
	ConfidenceExact      Confidence = "exact"
	ConfidenceNormalized Confidence = "normalized"
	ConfidenceFuzzy      Confidence = "fuzzy"
	ConfidenceNone       Confidence = "none"
)

// CatalogEntry is one canonical menu item or recipe a raw name is matched
// against. Read-only here; owned by the catalog store.
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MatchResult is the outcome of resolving one raw name against the catalog.
type MatchResult struct {
	Entry      *CatalogEntry `json:"entry,omitempty"`
	Confidence Confidence    `json:"confidence"`
	Score      float64       `json:"score"`
}

// ResolverConfig holds configuration for the best-match resolver.
type ResolverConfig struct {
	FuzzyThreshold float64
	Normalize      NormalizeOptions
}

// Resolver matches AI-extracted item names against a catalog.
type Resolver struct {
	fuzzyThreshold float64
	normalize      NormalizeOptions
}

// NewResolver creates a resolver with the given configuration. A zero or
// negative threshold falls back to the default.
func NewResolver(cfg ResolverConfig) *Resolver {
	threshold := cfg.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &Resolver{
		fuzzyThreshold: threshold,
		normalize:      cfg.Normalize,
	}
}

// Resolve returns the best catalog match for rawName, in strict tier order:
// exact (case-insensitive, no normalization), normalized, fuzzy (best score
// at or above the threshold, first entry wins ties), none.
//
// Total function: an empty name or empty catalog yields confidence none,
// never an error.
func (r *Resolver) Resolve(rawName string, catalog []CatalogEntry) MatchResult {
	if rawName == "" || len(catalog) == 0 {
		return MatchResult{Confidence: ConfidenceNone}
	}

	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, rawName) {
			entry := catalog[i]
			return MatchResult{Entry: &entry, Confidence: ConfidenceExact, Score: 1.0}
		}
	}

	normalized := NormalizeWith(rawName, r.normalize)
	// A name that normalizes away entirely (say a bare portion prefix like
	// "6oz") carries no signal; matching it against another empty
	// normalization would be a coincidence, not a match.
	if normalized == "" {
		return MatchResult{Confidence: ConfidenceNone}
	}
	for i := range catalog {
		if NormalizeWith(catalog[i].Name, r.normalize) == normalized {
			entry := catalog[i]
			return MatchResult{Entry: &entry, Confidence: ConfidenceNormalized, Score: 1.0}
		}
	}

	bestScore := 0.0
	bestIdx := -1
	for i := range catalog {
		score := Similarity(normalized, NormalizeWith(catalog[i].Name, r.normalize))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore >= r.fuzzyThreshold {
		entry := catalog[bestIdx]
		return MatchResult{Entry: &entry, Confidence: ConfidenceFuzzy, Score: bestScore}
	}

	return MatchResult{Confidence: ConfidenceNone}
}
