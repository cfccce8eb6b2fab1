// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// ADSR holds the four envelope phase parameters. Times are in seconds,
// Sustain is a level in [0, 1].
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Envelope shapes a mono source with a piecewise-linear ADSR amplitude
// envelope over a fixed note length.
//
// When attack+decay+release exceed the note length, the three phases are
// proportionally compressed so their sum equals the note length, preserving
// their relative weights. The envelope therefore always starts at 0, always
// reaches 0 by the end of the note, and never jumps.
type Envelope struct {
	src    Source
	frames int

	attackLen  int
	decayLen   int
	releaseLen int
	sustain    float64

	pos int
}

// NewEnvelope wraps src, shaping frames samples with the given ADSR.
func NewEnvelope(src Source, adsr ADSR, frames int) (*Envelope, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if frames < 0 {
		frames = 0
	}

	rate := float64(src.SampleRate())
	attackLen := int(math.Round(math.Max(adsr.Attack, 0) * rate))
	decayLen := int(math.Round(math.Max(adsr.Decay, 0) * rate))
	releaseLen := int(math.Round(math.Max(adsr.Release, 0) * rate))

	// Proportional compression: scale the phases down so they exactly fill
	// the note, keeping their relative weights.
	if total := attackLen + decayLen + releaseLen; total > frames && total > 0 {
		scale := float64(frames) / float64(total)
		attackLen = int(float64(attackLen) * scale)
		decayLen = int(float64(decayLen) * scale)
		releaseLen = frames - attackLen - decayLen
	}

	sustain := math.Min(math.Max(adsr.Sustain, 0), 1)

	return &Envelope{
		src:        src,
		frames:     frames,
		attackLen:  attackLen,
		decayLen:   decayLen,
		releaseLen: releaseLen,
		sustain:    sustain,
	}, nil
}

func (e *Envelope) SampleRate() int { return e.src.SampleRate() }
func (e *Envelope) Channels() int   { return 1 }

func (e *Envelope) Reset() {
	e.pos = 0
	e.src.Reset()
}

func (e *Envelope) ReadSamples(dst []float64) (int, error) {
	n, err := e.src.ReadSamples(dst)
	for i := 0; i < n; i++ {
		dst[i] *= e.GainAt(e.pos + i)
	}
	e.pos += n
	return n, err
}

// GainAt returns the envelope multiplier for sample index i. Indices at or
// past the note length return 0, so the envelope is closed at both ends.
func (e *Envelope) GainAt(i int) float64 {
	if i <= 0 || i >= e.frames {
		return 0
	}

	switch releaseStart := e.frames - e.releaseLen; {
	case i < e.attackLen:
		return float64(i) / float64(e.attackLen)
	case i < e.attackLen+e.decayLen:
		return 1 - (1-e.sustain)*float64(i-e.attackLen)/float64(e.decayLen)
	case i < releaseStart:
		return e.sustain
	default:
		j := i - releaseStart
		return e.sustain * (1 - float64(j+1)/float64(e.releaseLen))
	}
}
