package matching

import (
	"strings"
	"unicode/utf8"
)

// Similarity scores two item names in [0, 1].
//
// First branch that applies wins:
//  1. case-insensitive equality → 1.0
//  2. one name contains the other (case-insensitive) → shorter/longer character length
//  3. word overlap → |words(a) ∩ words(b)| / |words(a) ∪ words(b)|
//
// The word-overlap branch uses the union denominator so the score is
// symmetric regardless of argument order.
func Similarity(a, b string) float64 {
	if strings.EqualFold(a, b) {
		return 1.0
	}

	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		// Character lengths, not byte lengths: accented names must not
		// skew the ratio.
		shorter, longer := utf8.RuneCountInString(la), utf8.RuneCountInString(lb)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	wordsA := strings.Fields(la)
	wordsB := strings.Fields(lb)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	overlap := intersectionCount(wordsA, wordsB)
	if overlap == 0 {
		return 0
	}

	return float64(overlap) / float64(unionCount(wordsA, wordsB))
}

// intersectionCount returns the number of distinct words present in both lists.
func intersectionCount(words1, words2 []string) int {
	set := make(map[string]bool, len(words1))
	for _, w := range words1 {
		set[w] = true
	}

	count := 0
	seen := make(map[string]bool, len(words2))
	for _, w := range words2 {
		if set[w] && !seen[w] {
			count++
			seen[w] = true
		}
	}
	return count
}

// unionCount returns the number of distinct words across both lists.
func unionCount(words1, words2 []string) int {
	set := make(map[string]bool, len(words1)+len(words2))
	for _, w := range words1 {
		set[w] = true
	}
	for _, w := range words2 {
		set[w] = true
	}
	return len(set)
}
