package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSnapshot(t *testing.T) {
	r := analyzeSnapshot(testSnapshot())

	assert := assert.New(t)
	assert.Equal(2, r.numFiles)
	assert.Equal(8, r.numNotes)
	assert.Equal(1, r.numRests)
	assert.Equal(7, r.numPitched)
	assert.Equal(4, r.numDistinct)
	assert.Equal("9/4", r.total.RatString())
	assert.Equal(map[string]int{"hicaz": 1}, r.makams)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, testSnapshot(), 2)

	out := buf.String()
	assert.Contains(t, out, "numFiles: 2")
	assert.Contains(t, out, "total length in whole notes: 2.25")
	assert.Contains(t, out, "  A      2")
	assert.NotContains(t, out, "F#4")
}
