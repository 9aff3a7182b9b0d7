package midi

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrMisaligned = errors.New("notes and durations differ in length")

// semitones either side of center reached by a full pitch bend
const bendRange = 2

// C sits this many kommas above G in the pitch cycle
const cOffset = 22

type RenderOptions struct {
	BPM      float64
	Channel  uint8
	Velocity uint8
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{BPM: 90, Channel: 0, Velocity: 100}
}

// Key converts an octave aware note like "A4" or "B4#5" into a MIDI key and
// the pitch bend that raises it by the remaining fraction of a semitone.
// Octaves follow scientific pitch notation, C4 is key 60.
func Key(note string) (uint8, int16, error) {
	if len(note) < 2 || note[1] < '0' || note[1] > '9' {
		return 0, 0, fmt.Errorf("no octave in note %q", note)
	}
	octave := int(note[1] - '0')
	letter, offset, err := pitch.Split(model.PitchClass(note[:1] + note[2:]))
	if err != nil {
		return 0, 0, err
	}

	// kommas above the C of this octave; B#5 lands past the next C
	base, _ := pitch.LetterPosition(letter)
	fromC := (base-cOffset+constants.KommasPerOctave)%constants.KommasPerOctave + offset

	semitones := float64(octave*constants.KommasPerOctave+fromC) * 12 / constants.KommasPerOctave
	key := math.Floor(semitones + 1e-9)
	midiKey := int(key) + 12
	if midiKey < 0 || midiKey > 127 {
		return 0, 0, fmt.Errorf("note %q out of midi range", note)
	}

	frac := semitones - key
	bend := int16(math.Round(frac / bendRange * 8191))
	return uint8(midiKey), bend, nil
}

// Ticks converts a fraction of a whole note into ticks, rounding to nearest.
func Ticks(d model.Duration, ticksPerQuarter uint32) uint32 {
	r := new(big.Rat).Mul(d.Rat(), big.NewRat(int64(4*ticksPerQuarter), 1))
	f, _ := r.Float64()
	return uint32(math.Round(f))
}

// Render turns an aligned sequence of octave aware notes into a single track
// SMF. Rests advance time.
func Render(notes []string, durations []model.Duration, opts RenderOptions) (*smf.SMF, error) {
	if len(notes) != len(durations) {
		return nil, fmt.Errorf("%w: %d notes, %d durations", ErrMisaligned, len(notes), len(durations))
	}

	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var pending uint32
	for i, note := range notes {
		length := Ticks(durations[i], ticks.Ticks4th())
		if note == constants.Silence {
			pending += length
			continue
		}

		key, bend, err := Key(note)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		tr.Add(pending, midi.Pitchbend(opts.Channel, bend))
		tr.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(length, midi.NoteOff(opts.Channel, key))
		pending = 0
	}
	tr.Close(pending)

	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}
