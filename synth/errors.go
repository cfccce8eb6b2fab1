// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveFrequency     = errors.New("frequency must be positive")
	ErrNonPositiveDuration      = errors.New("duration must be positive")
	ErrNegativeStart            = errors.New("start time must not be negative")
	ErrNonPositiveSampleRate    = errors.New("sample rate must be positive")
	ErrNonPositiveTotalDuration = errors.New("total duration must be positive")
	ErrUnknownPreset            = errors.New("unknown preset")
	ErrEmptyTable               = errors.New("wavetable must not be empty")
	ErrNotMono                  = errors.New("source must be mono")
	ErrInvalidDstSize           = errors.New("dst size must be multiple of channels")
)

// ValidationError reports a malformed render input. Validation runs before
// any synthesis, so a render that returns one produced no partial buffer.
type ValidationError struct {
	// NoteIndex is the index of the offending note in the render request,
	// or -1 when the error concerns a non-note input.
	NoteIndex int
	// Field names the offending input ("frequency", "duration", "preset", ...).
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.NoteIndex < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("note %d: %s: %v", e.NoteIndex, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErr(noteIndex int, field string, err error) *ValidationError {
	return &ValidationError{NoteIndex: noteIndex, Field: field, Err: err}
}
