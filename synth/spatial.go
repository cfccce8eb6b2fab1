// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/Tim-Albiges/Data-Sonification/utils"
)

// SpatialParams are the tuning constants of the spatializer. The attenuation
// and depth-cue curves are fixed in shape; these constants position them.
type SpatialParams struct {
	// DistanceFloor is the minimum distance used by the inverse-distance
	// attenuation 1/max(d, DistanceFloor). Sources at or inside the floor
	// render at full amplitude.
	DistanceFloor float64
	// DepthCutoffMax is the depth-cue filter cutoff in Hz for sources at or
	// in front of the listener. The cue is inactive at this value.
	DepthCutoffMax float64
	// DepthCutoffMin is the cutoff the cue approaches far behind the listener.
	DepthCutoffMin float64
	// DepthHalfDistance is the distance behind the listener, in scene units,
	// at which the cutoff has fallen halfway from max to min.
	DepthHalfDistance float64
	// MaxDelay is the interaural delay in seconds applied to the far ear
	// when a source sits fully to one side.
	MaxDelay float64
}

// DefaultSpatialParams returns the tuning used by the built-in engine.
func DefaultSpatialParams() SpatialParams {
	return SpatialParams{
		DistanceFloor:     1.0,
		DepthCutoffMax:    16000,
		DepthCutoffMin:    500,
		DepthHalfDistance: 5.0,
		MaxDelay:          0.0007,
	}
}

// Spatializer projects a mono source into stereo from its 3D position
// relative to a listener. It combines:
//
//   - equal-power panning from the azimuth in the X-Y plane (Y is forward,
//     X is right), so gainL^2 + gainR^2 == 1 across the field;
//   - inverse-distance attenuation with a floor;
//   - a depth cue: a one-pole low-pass whose cutoff drops as the source
//     moves behind the listener;
//   - an interaural time difference: the ear away from the source hears the
//     signal a fraction of a millisecond late for strong side positions.
//
// The output adds no energy beyond the mono input scaled by those factors;
// silence in produces silence out.
type Spatializer struct {
	src Source

	gainL float64
	gainR float64
	pan   float64

	depthActive bool
	depthCutoff float64
	depthAlpha  float64
	depthPrev   float64

	delaySamples float64
	delayLeft    bool
	hist         []float64
	histPos      int
	histFill     int

	mono []float64
}

// NewSpatializer positions src at source, heard from listener.
func NewSpatializer(src Source, source, listener Vec3, p SpatialParams) (*Spatializer, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}

	rel := source.Sub(listener)
	dist := rel.Len()

	floor := p.DistanceFloor
	if floor <= 0 {
		floor = DefaultSpatialParams().DistanceFloor
	}
	distGain := 1 / math.Max(dist, floor)

	// Azimuth 0 is straight ahead, +pi/2 fully right. The pan scalar folds
	// rear positions onto the same left/right axis; depth handles front/back.
	azimuth := math.Atan2(rel.X, rel.Y)
	pan := math.Sin(azimuth)
	theta := (pan + 1) / 2 * math.Pi / 2

	s := &Spatializer{
		src:   src,
		gainL: math.Cos(theta) * distGain,
		gainR: math.Sin(theta) * distGain,
		pan:   pan,
	}

	if behind := -rel.Y; behind > 0 && p.DepthHalfDistance > 0 {
		cutoff := p.DepthCutoffMin +
			(p.DepthCutoffMax-p.DepthCutoffMin)/(1+behind/p.DepthHalfDistance)
		cutoff, _ = clampCutoff(cutoff, src.SampleRate())
		s.depthActive = true
		s.depthCutoff = cutoff
		s.depthAlpha = lowPassAlpha(cutoff, src.SampleRate())
	}

	if delay := p.MaxDelay * math.Abs(pan) * float64(src.SampleRate()); delay > 0 {
		s.delaySamples = delay
		s.delayLeft = pan > 0
		s.hist = make([]float64, int(delay)+4)
	}

	return s, nil
}

func (s *Spatializer) SampleRate() int { return s.src.SampleRate() }
func (s *Spatializer) Channels() int   { return 2 }

func (s *Spatializer) Reset() {
	s.depthPrev = 0
	s.histPos = 0
	s.histFill = 0
	s.src.Reset()
}

// ReadSamples fills dst with interleaved stereo samples. Per-channel length
// always equals the mono input length; the delayed ear is padded with
// leading silence.
func (s *Spatializer) ReadSamples(dst []float64) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	frames := len(dst) / 2
	if frames == 0 {
		return 0, nil
	}

	if cap(s.mono) < frames {
		s.mono = make([]float64, frames)
	}
	n, err := s.src.ReadSamples(s.mono[:frames])

	for i := 0; i < n; i++ {
		v := s.mono[i]
		if s.depthActive {
			s.depthPrev += s.depthAlpha * (v - s.depthPrev)
			v = s.depthPrev
		}

		left, right := v, v
		if s.delaySamples > 0 {
			s.push(v)
			if s.delayLeft {
				left = s.delayed()
			} else {
				right = s.delayed()
			}
		}

		dst[2*i] = left * s.gainL
		dst[2*i+1] = right * s.gainR
	}

	return 2 * n, err
}

func (s *Spatializer) push(v float64) {
	s.hist[s.histPos] = v
	s.histPos++
	if s.histPos == len(s.hist) {
		s.histPos = 0
	}
	if s.histFill < len(s.hist) {
		s.histFill++
	}
}

// past returns the mono sample back positions before the most recent push,
// or 0 before the start of the stream.
func (s *Spatializer) past(back int) float64 {
	if back >= s.histFill {
		return 0
	}
	idx := s.histPos - 1 - back
	if idx < 0 {
		idx += len(s.hist)
	}
	return s.hist[idx]
}

// delayed reads the history at the fractional interaural delay, duplicating
// the edge point when the delay is under one sample.
func (s *Spatializer) delayed() float64 {
	k := int(s.delaySamples)
	frac := s.delaySamples - float64(k)

	y1 := s.past(k)
	y2 := s.past(k + 1)
	y3 := s.past(k + 2)
	y0 := y1
	if k > 0 {
		y0 = s.past(k - 1)
	}
	return utils.CubicInterpolate(y0, y1, y2, y3, frac)
}
