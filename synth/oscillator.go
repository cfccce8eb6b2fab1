// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"math"
)

// Shape selects an oscillator waveform.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSaw
	ShapeSquare
	ShapeTriangle
	// ShapeTable reads a custom wavetable with wraparound and linear
	// interpolation between entries.
	ShapeTable
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSaw:
		return "saw"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeTable:
		return "table"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// harmonicTableSize is the length of wavetables built from harmonic weights.
const harmonicTableSize = 2048

// Oscillator generates a finite mono stream of one waveform at a fixed
// frequency via phase accumulation: the phase advances by freq/sampleRate
// per sample, wrapped into [0, 1).
type Oscillator struct {
	shape      Shape
	table      []float64
	freq       float64
	sampleRate int
	frames     int

	pos      int
	phase    float64
	phaseInc float64

	// Vibrato as sinusoidal phase modulation, zero rate disables it.
	vibRate  float64
	vibDepth float64
}

// NewOscillator creates an oscillator for a closed-form shape.
// Use NewTableOscillator or NewHarmonicOscillator for wavetable playback.
func NewOscillator(shape Shape, freq float64, sampleRate, frames int) (*Oscillator, error) {
	if shape == ShapeTable {
		return nil, ErrEmptyTable
	}
	return newOscillator(shape, nil, freq, sampleRate, frames)
}

// NewTableOscillator creates an oscillator reading table as one waveform
// period, with wraparound and linear interpolation between entries.
func NewTableOscillator(table []float64, freq float64, sampleRate, frames int) (*Oscillator, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	return newOscillator(ShapeTable, table, freq, sampleRate, frames)
}

// NewHarmonicOscillator builds a per-voice wavetable from harmonic weights:
// weights[i] scales harmonic i+1 of freq. Harmonics at or above Nyquist are
// skipped so the table cannot alias at this voice's pitch. The table is
// normalized to unit peak.
func NewHarmonicOscillator(weights []float64, freq float64, sampleRate, frames int) (*Oscillator, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyTable
	}
	if freq <= 0 {
		return nil, ErrNonPositiveFrequency
	}
	if sampleRate <= 0 {
		return nil, ErrNonPositiveSampleRate
	}

	nyquist := float64(sampleRate) / 2
	table := make([]float64, harmonicTableSize)
	for i, weight := range weights {
		if weight == 0 {
			continue
		}
		harmonic := float64(i + 1)
		if freq*harmonic >= nyquist {
			continue
		}
		for j := range table {
			table[j] += weight * math.Sin(2*math.Pi*harmonic*float64(j)/harmonicTableSize)
		}
	}

	peak := 0.0
	for _, v := range table {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		for j := range table {
			table[j] /= peak
		}
	}

	return newOscillator(ShapeTable, table, freq, sampleRate, frames)
}

func newOscillator(shape Shape, table []float64, freq float64, sampleRate, frames int) (*Oscillator, error) {
	if freq <= 0 {
		return nil, ErrNonPositiveFrequency
	}
	if sampleRate <= 0 {
		return nil, ErrNonPositiveSampleRate
	}
	if frames < 0 {
		frames = 0
	}
	return &Oscillator{
		shape:      shape,
		table:      table,
		freq:       freq,
		sampleRate: sampleRate,
		frames:     frames,
		phaseInc:   freq / float64(sampleRate),
	}, nil
}

// SetVibrato enables sinusoidal phase modulation at rate Hz with the given
// depth (radians of fundamental phase deviation). A rate of 0 disables it.
func (o *Oscillator) SetVibrato(rate, depth float64) {
	if rate <= 0 {
		o.vibRate, o.vibDepth = 0, 0
		return
	}
	o.vibRate, o.vibDepth = rate, depth
}

// Frequency returns the oscillator's fundamental in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

func (o *Oscillator) SampleRate() int { return o.sampleRate }
func (o *Oscillator) Channels() int   { return 1 }

func (o *Oscillator) Reset() {
	o.pos = 0
	o.phase = 0
}

func (o *Oscillator) ReadSamples(dst []float64) (int, error) {
	if o.pos >= o.frames {
		return 0, io.EOF
	}

	n := len(dst)
	if remaining := o.frames - o.pos; n > remaining {
		n = remaining
	}

	for i := 0; i < n; i++ {
		dst[i] = o.next()
	}

	if o.pos >= o.frames {
		return n, io.EOF
	}
	return n, nil
}

func (o *Oscillator) next() float64 {
	p := o.phase
	if o.vibRate > 0 {
		t := float64(o.pos) / float64(o.sampleRate)
		// depth/rate scaling matches a vibrato width expressed in radians
		// of instantaneous phase deviation at the fundamental.
		p += o.vibDepth / (2 * math.Pi * o.vibRate) * math.Sin(2*math.Pi*o.vibRate*t)
	}
	p -= math.Floor(p)

	v := o.eval(p)

	o.phase += o.phaseInc
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	o.pos++
	return v
}

func (o *Oscillator) eval(phase float64) float64 {
	switch o.shape {
	case ShapeSine:
		return math.Sin(2 * math.Pi * phase)
	case ShapeSaw:
		return 2*phase - 1
	case ShapeSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case ShapeTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case ShapeTable:
		return o.lookup(phase)
	}
	return 0
}

// lookup reads the wavetable at a fractional position with wraparound,
// linearly interpolating between adjacent entries.
func (o *Oscillator) lookup(phase float64) float64 {
	pos := phase * float64(len(o.table))
	idx := int(pos)
	frac := pos - float64(idx)
	if idx >= len(o.table) {
		idx = 0
	}
	next := idx + 1
	if next >= len(o.table) {
		next = 0
	}
	return o.table[idx] + frac*(o.table[next]-o.table[idx])
}
