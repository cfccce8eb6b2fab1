// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Vec3 is a simple 3D vector. X grows rightward, Y forward (away from the
// listener's face), Z upward.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Len() float64    { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z) }

// Cutoff is an optional low-pass cutoff frequency. The zero value means
// "absent"; use CutoffHz to construct a present value. Callers must branch
// on Set rather than treating 0 Hz as disabled.
type Cutoff struct {
	Hz  float64
	Set bool
}

// CutoffHz returns a present cutoff value.
func CutoffHz(hz float64) Cutoff { return Cutoff{Hz: hz, Set: true} }

// NoCutoff is the absent cutoff value.
var NoCutoff = Cutoff{}

// Note is a single timed event in a render request. Notes are immutable
// values owned by the caller; the engine only reads them.
type Note struct {
	// Frequency is the fundamental pitch in Hz. Must be positive.
	Frequency float64
	// Start is the onset time in seconds from the beginning of the buffer.
	Start float64
	// Duration of the note in seconds. Must be positive.
	Duration float64
	// Cutoff optionally overrides the preset's filter for this note.
	Cutoff Cutoff
	// Position of the sound source in 3D space.
	Position Vec3
}

// NoteAt is a shorthand constructor for a note without filter or position.
func NoteAt(frequency, start, duration float64) Note {
	return Note{Frequency: frequency, Start: start, Duration: duration}
}

// Validate checks the note's fields. index is reported back in the error.
func (n Note) Validate(index int) error {
	if n.Frequency <= 0 {
		return validationErr(index, "frequency", ErrNonPositiveFrequency)
	}
	if n.Duration <= 0 {
		return validationErr(index, "duration", ErrNonPositiveDuration)
	}
	if n.Start < 0 {
		return validationErr(index, "start", ErrNegativeStart)
	}
	return nil
}

// Listener is the point in space the mix is rendered for.
type Listener struct {
	Position Vec3
}
