package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrMalformedDuration = errors.New("malformed duration")
)

// Record is a sounding line of a transcription.
type Record struct {
	Code   string
	Note   string
	fields []string
}

// Parse splits a tab separated line. ok is false for lines that are not
// sounding events, such as the header or lyric-only lines.
func Parse(line string) (rec Record, ok bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "\t")
	if len(fields) <= constants.CodeField {
		return rec, false, nil
	}
	if !constants.IsNoteLineCode(fields[constants.CodeField]) {
		return rec, false, nil
	}
	if len(fields) <= constants.NoteField {
		return rec, false, fmt.Errorf("%w: %d fields in line with code %s",
			ErrMalformedRecord, len(fields), fields[constants.CodeField])
	}

	rec = Record{
		Code:   fields[constants.CodeField],
		Note:   fields[constants.NoteField],
		fields: fields,
	}
	return rec, true, nil
}

// HasDuration reports whether both duration fields are present.
func (r Record) HasDuration() bool {
	return len(r.fields) > constants.DenominatorField
}

func (r Record) Duration() (model.Duration, error) {
	if !r.HasDuration() {
		return model.Duration{}, fmt.Errorf("%w: missing fields", ErrMalformedDuration)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(r.fields[constants.NumeratorField]), 10, 64)
	if err != nil {
		return model.Duration{}, fmt.Errorf("%w: numerator: %v", ErrMalformedDuration, err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(r.fields[constants.DenominatorField]), 10, 64)
	if err != nil {
		return model.Duration{}, fmt.Errorf("%w: denominator: %v", ErrMalformedDuration, err)
	}
	if den == 0 {
		return model.Duration{}, fmt.Errorf("%w: zero denominator", ErrMalformedDuration)
	}
	return model.Duration{Num: num, Den: den}, nil
}

// Event is a classified note token.
type Event struct {
	Silent bool
	// Note is the token without its octave digit, e.g. "Bb9" for "B4b9".
	Note   string
	Octave byte
}

// Classify treats "Es" and tokens without an octave digit as silence.
func Classify(token string) Event {
	if token == constants.Silence || len(token) < 2 || !unicode.IsDigit(rune(token[1])) {
		return Event{Silent: true}
	}
	return Event{
		Note:   token[:1] + token[2:],
		Octave: token[1],
	}
}

func (r Record) Event() Event {
	return Classify(r.Note)
}
