package pitch

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
)

const (
	Flat  byte = 'b'
	Sharp byte = '#'
)

// Resolve converts a note without its octave digit to the all sharp
// representation.
//
//	G    -> G
//	Bb9  -> A
//	Eb4  -> D#5
//	Bb13 -> G#5
//	E#5  -> F#1
func Resolve(note string) (model.PitchClass, error) {
	if len(note) == 1 {
		return model.PitchClass(note), nil
	}
	if len(note) == 0 {
		return "", fmt.Errorf("%w: empty note", ErrUnknownLetter)
	}

	sign := note[1]
	if sign != Sharp && sign != Flat {
		return "", &AccidentalError{Note: note, Symbol: sign}
	}

	komma, err := strconv.Atoi(note[2:])
	if err != nil || komma < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformedMagnitude, note)
	}
	return ResolveParts(note[0], sign, komma)
}

// ResolveParts resolves root raised or lowered by komma kommas. Magnitudes
// larger than an octave keep walking around the cycle.
func ResolveParts(root byte, sign byte, komma int) (model.PitchClass, error) {
	idx := IndexOf(root)
	if idx < 0 {
		return "", &LetterError{Letter: root}
	}
	if komma < 0 {
		return "", fmt.Errorf("%w: %d", ErrMalformedMagnitude, komma)
	}

	// whole cycles cancel out; keep an exact multiple at a full octave so it
	// still lands back on root
	if komma > constants.KommasPerOctave {
		komma = (komma-1)%constants.KommasPerOctave + 1
	}

	remaining := komma
	switch sign {
	case Flat:
		// step down first, then account for the step
		for remaining > 0 {
			idx = prev(idx)
			remaining -= Kommas[idx]
		}
		// overshoot lands below the target, raise it back
		return withOffset(Letters[idx], -remaining), nil

	case Sharp:
		// account for the step, then move up
		for remaining > 0 {
			remaining -= Kommas[idx]
			idx = next(idx)
		}
		if remaining < 0 {
			idx = prev(idx)
			remaining += Kommas[idx]
		}
		return withOffset(Letters[idx], remaining), nil
	}

	return "", &AccidentalError{Note: string([]byte{root, sign}), Symbol: sign}
}

func withOffset(letter byte, offset int) model.PitchClass {
	if offset == 0 {
		return model.PitchClass(letter)
	}
	return model.PitchClass(fmt.Sprintf("%c#%d", letter, offset))
}

// Split breaks a pitch class into its letter and sharp offset.
func Split(pc model.PitchClass) (byte, int, error) {
	s := string(pc)
	if len(s) == 0 || IndexOf(s[0]) < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	if len(s) == 1 {
		return s[0], 0, nil
	}
	if s[1] != Sharp {
		return 0, 0, &AccidentalError{Note: s, Symbol: s[1]}
	}
	offset, err := strconv.Atoi(s[2:])
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedMagnitude, s)
	}
	return s[0], offset, nil
}

// Position is the komma distance of pc above G, within one octave.
func Position(pc model.PitchClass) (int, error) {
	letter, offset, err := Split(pc)
	if err != nil {
		return 0, err
	}
	base, _ := LetterPosition(letter)
	return (base + offset) % constants.KommasPerOctave, nil
}

// WithOctave places the octave digit after the letter: WithOctave("A#5", '4')
// is "A4#5".
func WithOctave(pc model.PitchClass, octave byte) string {
	s := string(pc)
	if s == "" {
		return s
	}
	return s[:1] + string(octave) + s[1:]
}

// Label is the external form of a sound: "Es" for a rest, otherwise the
// pitch class, with the octave when withOctave is set.
func Label(s model.Sound, withOctave bool) string {
	if s.Silent {
		return constants.Silence
	}
	if !withOctave {
		return string(s.PitchClass)
	}
	return WithOctave(s.PitchClass, s.Octave)
}
