// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Buffer holds rendered audio as interleaved float64 samples. After a
// render's final normalization every sample lies in [-1, 1].
type Buffer struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

// NewBuffer allocates a silent buffer of frames frames.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	return &Buffer{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float64, frames*channels),
	}
}

// Frames is the per-channel sample count.
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, v := range b.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Channel extracts one deinterleaved channel as a fresh slice.
func (b *Buffer) Channel(ch int) []float64 {
	frames := b.Frames()
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		out[i] = b.Samples[i*b.Channels+ch]
	}
	return out
}
