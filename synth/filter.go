// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// LowPass is a one-pole low-pass filter over a mono source:
//
//	y[n] = y[n-1] + alpha * (x[n] - y[n-1])
//
// with alpha derived from the cutoff through the standard one-pole
// time-constant relation alpha = 1 - e^(-2*pi*cutoff/sampleRate).
//
// Cutoff is a shaping parameter, not a correctness input: values outside
// (0, Nyquist) are clamped into the valid range rather than rejected, and
// Clamped reports when that happened.
type LowPass struct {
	src     Source
	cutoff  float64
	alpha   float64
	clamped bool

	prev float64
}

// NewLowPass wraps src with a low-pass stage at cutoffHz.
func NewLowPass(src Source, cutoffHz float64) (*LowPass, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}

	cutoff, clamped := clampCutoff(cutoffHz, src.SampleRate())

	return &LowPass{
		src:     src,
		cutoff:  cutoff,
		alpha:   lowPassAlpha(cutoff, src.SampleRate()),
		clamped: clamped,
	}, nil
}

// clampCutoff forces cutoffHz into the open interval (0, sampleRate/2).
func clampCutoff(cutoffHz float64, sampleRate int) (cutoff float64, clamped bool) {
	nyquist := float64(sampleRate) / 2
	const margin = 1.0 // Hz kept clear of both interval edges

	switch {
	case cutoffHz <= 0:
		return math.Min(margin, nyquist/2), true
	case cutoffHz >= nyquist:
		return nyquist - math.Min(margin, nyquist/2), true
	}
	return cutoffHz, false
}

func lowPassAlpha(cutoffHz float64, sampleRate int) float64 {
	return 1 - math.Exp(-2*math.Pi*cutoffHz/float64(sampleRate))
}

// Cutoff returns the effective (possibly clamped) cutoff in Hz.
func (l *LowPass) Cutoff() float64 { return l.cutoff }

// Clamped reports whether the requested cutoff was outside (0, Nyquist).
func (l *LowPass) Clamped() bool { return l.clamped }

func (l *LowPass) SampleRate() int { return l.src.SampleRate() }
func (l *LowPass) Channels() int   { return 1 }

func (l *LowPass) Reset() {
	l.prev = 0
	l.src.Reset()
}

func (l *LowPass) ReadSamples(dst []float64) (int, error) {
	n, err := l.src.ReadSamples(dst)
	for i := 0; i < n; i++ {
		l.prev += l.alpha * (dst[i] - l.prev)
		dst[i] = l.prev
	}
	return n, err
}
