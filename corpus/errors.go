package corpus

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrSequenceLengthMismatch = errors.New("num pitches does not match num durations")

type MismatchError struct {
	Path      string
	Pitches   int
	Durations int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s (%d vs %d)", e.Path, ErrSequenceLengthMismatch, e.Pitches, e.Durations)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrSequenceLengthMismatch
}

// LineError locates a failure inside a transcription.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
