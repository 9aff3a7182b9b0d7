package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on truncated input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.New(fmt.Sprint(r))
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// NumNotes counts note on messages across all tracks.
func NumNotes(mf *smf.SMF) int {
	var n int
	for _, track := range mf.Tracks {
		for _, evt := range track {
			var ch, key, vel uint8
			if evt.Message.GetNoteStart(&ch, &key, &vel) {
				n++
			}
		}
	}
	return n
}
