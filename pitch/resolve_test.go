package pitch

import (
	"fmt"
	"testing"
	"time"

	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownNotes(t *testing.T) {
	cases := map[string]model.PitchClass{
		"G":    "G",
		"Bb9":  "A",
		"Eb4":  "D#5",
		"Bb1":  "A#8",
		"Bb13": "G#5",
		"Gb5":  "F#4",
		"F#4":  "F#4",
		"E#4":  "F",
		"E#5":  "F#1",
		"E#13": "G",
	}

	for note, expected := range cases {
		t.Run(note, func(t *testing.T) {
			res, err := Resolve(note)
			require.NoError(t, err)
			assert.Equal(t, expected, res)
		})
	}
}

func TestNaturalLettersResolveToThemselves(t *testing.T) {
	for _, l := range Letters {
		res, err := Resolve(string(l))
		assert.NoError(t, err)
		assert.Equal(t, model.PitchClass(l), res)
	}
}

func TestUnrecognizedAccidental(t *testing.T) {
	_, err := Resolve("Bx9")

	assert := assert.New(t)
	assert.ErrorIs(err, ErrUnrecognizedAccidental)
	var accErr *AccidentalError
	assert.ErrorAs(err, &accErr)
	assert.Equal(byte('x'), accErr.Symbol)
}

func TestMalformedInput(t *testing.T) {
	_, err := Resolve("B#")
	assert.ErrorIs(t, err, ErrMalformedMagnitude)

	_, err = Resolve("Hb4")
	assert.ErrorIs(t, err, ErrUnknownLetter)

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrUnknownLetter)
}

func TestZeroMagnitudeIsRoot(t *testing.T) {
	for _, note := range []string{"Gb0", "G#0"} {
		res, err := Resolve(note)
		assert.NoError(t, err)
		assert.Equal(t, model.PitchClass("G"), res)
	}
}

func TestOffsetIsNeverZero(t *testing.T) {
	for _, l := range Letters {
		for _, sign := range []byte{Flat, Sharp} {
			for k := 0; k <= 2*constants.KommasPerOctave; k++ {
				pc, err := ResolveParts(l, sign, k)
				require.NoError(t, err)
				_, offset, err := Split(pc)
				require.NoError(t, err)
				if len(pc) > 1 {
					assert.Greater(t, offset, 0, "%c%c%d -> %s", l, sign, k, pc)
				}
			}
		}
	}
}

func TestResolvingCanonicalFormIsStable(t *testing.T) {
	for _, l := range Letters {
		for k := 1; k < constants.KommasPerOctave; k++ {
			for _, sign := range []byte{Flat, Sharp} {
				pc, err := ResolveParts(l, sign, k)
				require.NoError(t, err)

				again, err := Resolve(string(pc))
				require.NoError(t, err)
				assert.Equal(t, pc, again)
			}
		}
	}
}

func TestFlatAndSharpCloseTheCycle(t *testing.T) {
	for _, l := range Letters {
		for k := 0; k < constants.KommasPerOctave; k++ {
			name := fmt.Sprintf("%cb%d", l, k)
			t.Run(name, func(t *testing.T) {
				flat, err := ResolveParts(l, Flat, k)
				require.NoError(t, err)
				sharp, err := ResolveParts(l, Sharp, (constants.KommasPerOctave-k)%constants.KommasPerOctave)
				require.NoError(t, err)

				fp, err := Position(flat)
				require.NoError(t, err)
				sp, err := Position(sharp)
				require.NoError(t, err)
				assert.Equal(t, fp, sp)
			})
		}
	}
}

func TestMagnitudeBeyondOctaveWraps(t *testing.T) {
	res, err := Resolve("E#57")
	assert.NoError(t, err)
	assert.Equal(t, model.PitchClass("F"), res)

	res, err = Resolve("Bb62")
	assert.NoError(t, err)
	assert.Equal(t, model.PitchClass("A"), res)
}

func TestHugeMagnitudeMatchesReduced(t *testing.T) {
	cases := map[string]string{
		"Bb9000000000000000000": "Bb7",
		"E#5300000000000000000": "E#53",
		"G#5300000000000000001": "G#1",
	}
	for huge, reduced := range cases {
		start := time.Now()
		res, err := Resolve(huge)
		elapsed := time.Since(start)
		require.NoError(t, err)

		expected, err := Resolve(reduced)
		require.NoError(t, err)
		assert.Equal(t, expected, res, huge)
		assert.Less(t, elapsed, 100*time.Millisecond, huge)
	}
}

func TestWholeCyclesCancel(t *testing.T) {
	for _, l := range Letters {
		for _, sign := range []byte{Flat, Sharp} {
			for k := 1; k <= constants.KommasPerOctave; k++ {
				base, err := ResolveParts(l, sign, k)
				require.NoError(t, err)
				for cycles := 1; cycles <= 3; cycles++ {
					res, err := ResolveParts(l, sign, k+cycles*constants.KommasPerOctave)
					require.NoError(t, err)
					assert.Equal(t, base, res)
				}
			}
		}
	}
}

func TestPosition(t *testing.T) {
	cases := map[model.PitchClass]int{
		"G":   0,
		"A":   9,
		"C":   22,
		"F#8": 52,
		"D#5": 36,
	}
	for pc, expected := range cases {
		p, err := Position(pc)
		assert.NoError(t, err)
		assert.Equal(t, expected, p, string(pc))
	}
}

func TestWithOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A4#5", WithOctave("A#5", '4'))
	assert.Equal("G5", WithOctave("G", '5'))
	assert.Equal("", WithOctave("", '5'))
}

func TestLabel(t *testing.T) {
	s := model.Sound{PitchClass: "F#1", Octave: '5'}

	assert := assert.New(t)
	assert.Equal("F#1", Label(s, false))
	assert.Equal("F5#1", Label(s, true))
	assert.Equal(constants.Silence, Label(model.Rest(), true))
}
