package record

import (
	"testing"

	"github.com/jsphweid/makamdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSoundingLine(t *testing.T) {
	rec, ok, err := Parse("12\t9\t\tB4b1\t\t\t1\t8\t0\t64\t\t0.125\n")
	require.NoError(t, err)
	require.True(t, ok)

	assert := assert.New(t)
	assert.Equal("9", rec.Code)
	assert.Equal("B4b1", rec.Note)
	d, err := rec.Duration()
	assert.NoError(err)
	assert.Equal(model.Duration{Num: 1, Den: 8}, d)
}

func TestParseSkipsUnrecognizedCodes(t *testing.T) {
	for _, line := range []string{
		"Sira\tKod\tNota53\tNotaAE\tKoma53\tKomaAE\tPay\tPayda",
		"3\t51\t\t\t\t\t0\t1",
		"",
		"lonely",
	} {
		_, ok, err := Parse(line)
		assert.NoError(t, err)
		assert.False(t, ok, line)
	}
}

func TestParseTooFewFields(t *testing.T) {
	_, _, err := Parse("1\t9\tx")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDurationErrors(t *testing.T) {
	rec, ok, err := Parse("1\t9\t\tA4\t\t\t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, rec.HasDuration())
	_, err = rec.Duration()
	assert.ErrorIs(t, err, ErrMalformedDuration)

	rec, _, _ = Parse("1\t9\t\tA4\t\t\tx\t4")
	_, err = rec.Duration()
	assert.ErrorIs(t, err, ErrMalformedDuration)

	rec, _, _ = Parse("1\t9\t\tA4\t\t\t1\t0")
	_, err = rec.Duration()
	assert.ErrorIs(t, err, ErrMalformedDuration)
}

func TestClassify(t *testing.T) {
	cases := map[string]Event{
		"Es":   {Silent: true},
		"E":    {Silent: true},
		"":     {Silent: true},
		"Xx":   {Silent: true},
		"G4":   {Note: "G", Octave: '4'},
		"B4b9": {Note: "Bb9", Octave: '4'},
		"E5#4": {Note: "E#4", Octave: '5'},
	}
	for token, expected := range cases {
		assert.Equal(t, expected, Classify(token), token)
	}
}
