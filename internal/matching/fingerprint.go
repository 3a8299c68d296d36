package matching

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	contentSampleChars = 1000
	contentPrefixChars = 40
	maxSampleLines     = 50
	maxSampleNames     = 10
	minSampleSignal    = 3
)

// Fingerprint is a compact signature of an uploaded document used to flag
// redundant uploads within a batch before they are matched against the
// catalog. Computed once at classification time, never persisted.
type Fingerprint struct {
	NameToken    string   `json:"name_token"`
	ContentToken string   `json:"content_token"`
	SampleNames  []string `json:"sample_names"`
}

// NewFingerprint derives a fingerprint from the original filename and the
// text extracted from the document.
func NewFingerprint(filename, text string) Fingerprint {
	return Fingerprint{
		NameToken:    fileNameToken(filename),
		ContentToken: contentToken(text),
		SampleNames:  sampleItemNames(text),
	}
}

// fileNameToken lowercases the filename, drops the extension, and keeps only
// alphanumeric characters.
func fileNameToken(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return keepAlphanumeric(strings.ToLower(base))
}

// contentToken reduces the first 1000 characters of extracted text to an
// alphanumeric sample and fingerprints it as length plus prefix.
func contentToken(text string) string {
	runes := []rune(text)
	if len(runes) > contentSampleChars {
		runes = runes[:contentSampleChars]
	}
	clean := []rune(keepAlphanumeric(strings.ToLower(string(runes))))

	prefix := clean
	if len(prefix) > contentPrefixChars {
		prefix = prefix[:contentPrefixChars]
	}
	return fmt.Sprintf("%d:%s", len(clean), string(prefix))
}

// sampleItemNames takes the first-column token of up to the first 50
// non-empty, non-separator lines, reduced to lowercase letters, keeping the
// first 10.
func sampleItemNames(text string) []string {
	var names []string
	scanned := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSeparatorLine(line) {
			continue
		}
		scanned++
		if scanned > maxSampleLines {
			break
		}

		token := keepAlphabetic(strings.ToLower(firstColumn(line)))
		if token == "" {
			continue
		}
		names = append(names, token)
		if len(names) == maxSampleNames {
			break
		}
	}

	return names
}

// firstColumn cuts a line at the first tab, comma, or pipe delimiter.
func firstColumn(line string) string {
	if i := strings.IndexAny(line, "\t,|"); i >= 0 {
		return line[:i]
	}
	return line
}

// isSeparatorLine reports whether a line is only table ruling characters.
func isSeparatorLine(line string) bool {
	return strings.Trim(line, "-=_+|* \t") == ""
}

func keepAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepAlphabetic(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DuplicateDetector decides whether two uploaded documents carry the same
// source content.
type DuplicateDetector struct {
	overlapThreshold float64
}

// NewDuplicateDetector creates a detector. A zero or negative threshold
// falls back to the default overlap ratio.
func NewDuplicateDetector(overlapThreshold float64) *DuplicateDetector {
	if overlapThreshold <= 0 {
		overlapThreshold = DefaultOverlapThreshold
	}
	return &DuplicateDetector{overlapThreshold: overlapThreshold}
}

// AreDuplicates reports whether two fingerprints represent the same source
// document. Identical tokens short-circuit to true; fewer than three sample
// names on either side is insufficient signal; otherwise the sample-name
// overlap ratio over the shorter list must exceed the threshold.
//
// Symmetric: AreDuplicates(a, b) == AreDuplicates(b, a).
func (d *DuplicateDetector) AreDuplicates(a, b Fingerprint) bool {
	if a.NameToken == b.NameToken && a.ContentToken == b.ContentToken {
		return true
	}

	if len(a.SampleNames) < minSampleSignal || len(b.SampleNames) < minSampleSignal {
		return false
	}

	// Count in both directions and take the larger so the result does not
	// depend on argument order.
	overlap := sampleOverlap(a.SampleNames, b.SampleNames)
	if rev := sampleOverlap(b.SampleNames, a.SampleNames); rev > overlap {
		overlap = rev
	}

	shorter := len(a.SampleNames)
	if len(b.SampleNames) < shorter {
		shorter = len(b.SampleNames)
	}

	ratio := float64(overlap) / float64(shorter)
	return ratio > d.overlapThreshold
}

// sampleOverlap counts entries of names1 for which some entry of names2 is a
// substring match in either direction.
func sampleOverlap(names1, names2 []string) int {
	count := 0
	for _, n1 := range names1 {
		for _, n2 := range names2 {
			if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
				count++
				break
			}
		}
	}
	return count
}
