package pitch

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedAccidental = errors.New("accidental symbol unrecognised")
	ErrUnknownLetter          = errors.New("unknown pitch letter")
	ErrMalformedMagnitude     = errors.New("malformed komma magnitude")
)

// AccidentalError is returned for a note whose accidental is neither # nor b.
type AccidentalError struct {
	Note   string
	Symbol byte
}

func (e *AccidentalError) Error() string {
	return fmt.Sprintf("%s: %q in %q", ErrUnrecognizedAccidental, e.Symbol, e.Note)
}

func (e *AccidentalError) Is(target error) bool {
	return target == ErrUnrecognizedAccidental
}

type LetterError struct {
	Letter byte
}

func (e *LetterError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownLetter, e.Letter)
}

func (e *LetterError) Is(target error) bool {
	return target == ErrUnknownLetter
}
