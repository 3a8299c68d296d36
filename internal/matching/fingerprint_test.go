package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesReportText = `Item,Qty,Gross
Ribeye Steak,12,430.00
Caesar Salad,31,310.00
Fish Tacos,18,252.00
Half Caesar,9,58.50
French Fries,44,176.00
`

func TestNewFingerprint(t *testing.T) {
	fp := NewFingerprint("Weekly Sales (v2).xlsx", salesReportText)

	assert.Equal(t, "weeklysalesv2", fp.NameToken)
	assert.True(t, strings.Contains(fp.ContentToken, ":"), "content token carries length prefix")
	assert.Equal(t, []string{"item", "ribeyesteak", "caesarsalad", "fishtacos", "halfcaesar", "frenchfries"}, fp.SampleNames)
}

func TestNewFingerprintSkipsSeparatorLines(t *testing.T) {
	text := "Item | Qty\n------|----\nRibeye Steak | 12\n\nCaesar Salad | 31\n"
	fp := NewFingerprint("report.pdf", text)

	assert.Equal(t, []string{"item", "ribeyesteak", "caesarsalad"}, fp.SampleNames)
}

func TestNewFingerprintCapsSampleNames(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("Item Name,1\n")
	}
	fp := NewFingerprint("big.csv", b.String())

	assert.Len(t, fp.SampleNames, maxSampleNames)
}

func TestAreDuplicatesIdenticalTokens(t *testing.T) {
	d := NewDuplicateDetector(0)

	fp1 := NewFingerprint("sales.csv", salesReportText)
	fp2 := NewFingerprint("sales.csv", salesReportText)

	assert.True(t, d.AreDuplicates(fp1, fp2))
}

func TestAreDuplicatesIsReflexive(t *testing.T) {
	d := NewDuplicateDetector(0)
	fp := NewFingerprint("sales.csv", salesReportText)

	assert.True(t, d.AreDuplicates(fp, fp))
}

func TestAreDuplicatesSameContentDifferentFilename(t *testing.T) {
	d := NewDuplicateDetector(0)

	// identical extracted item names, different filenames: overlap 1.0 > 0.7
	fp1 := NewFingerprint("sales-monday.csv", salesReportText)
	fp2 := NewFingerprint("upload (1).csv", salesReportText)

	require.NotEqual(t, fp1.NameToken, fp2.NameToken)
	assert.True(t, d.AreDuplicates(fp1, fp2))
}

func TestAreDuplicatesInsufficientSignal(t *testing.T) {
	d := NewDuplicateDetector(0)

	fp1 := NewFingerprint("a.csv", "Ribeye,1\nCaesar,2\n")
	fp2 := NewFingerprint("b.csv", "Ribeye,1\nCaesar,2\n")

	require.Less(t, len(fp1.SampleNames), minSampleSignal)
	assert.False(t, d.AreDuplicates(fp1, fp2))
}

func TestAreDuplicatesDistinctContent(t *testing.T) {
	d := NewDuplicateDetector(0)

	other := "Item,Qty\nPulled Pork,3\nOnion Rings,7\nKey Lime Pie,2\nBrisket Plate,5\n"
	fp1 := NewFingerprint("a.csv", salesReportText)
	fp2 := NewFingerprint("b.csv", other)

	assert.False(t, d.AreDuplicates(fp1, fp2))
}

func TestAreDuplicatesIsSymmetric(t *testing.T) {
	d := NewDuplicateDetector(0)

	partial := "Item,Qty\nRibeye Steak,3\nCaesar Salad,7\nFish Tacos,2\n"
	fp1 := NewFingerprint("a.csv", salesReportText)
	fp2 := NewFingerprint("b.csv", partial)

	assert.Equal(t, d.AreDuplicates(fp1, fp2), d.AreDuplicates(fp2, fp1))
}

func TestAreDuplicatesHonorsThresholdOverride(t *testing.T) {
	// three of four names shared: ratio 0.75
	text1 := "Ribeye,1\nCaesar,2\nTacos,3\nFries,4\n"
	text2 := "Ribeye,1\nCaesar,2\nTacos,3\nPie,4\n"

	fp1 := NewFingerprint("a.csv", text1)
	fp2 := NewFingerprint("b.csv", text2)

	assert.True(t, NewDuplicateDetector(0.7).AreDuplicates(fp1, fp2))
	assert.False(t, NewDuplicateDetector(0.8).AreDuplicates(fp1, fp2))
}

func TestContentTokenPrefixRespectsRuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 50)

	fp := NewFingerprint("specials.txt", text)

	assert.Equal(t, "50:"+strings.Repeat("é", 40), fp.ContentToken)
}
