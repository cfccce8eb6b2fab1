// SPDX-License-Identifier: EPL-2.0

package synthtest

import (
	"math"
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"
)

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak in a mono sample slice. Bin 0 (DC) is ignored.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) == 0 {
		return 0
	}

	spectrum := fft.FFTReal(samples)
	half := len(spectrum)/2 + 1

	peakBin := 0
	peakMag := 0.0
	for bin := 1; bin < half; bin++ {
		if mag := cmplx.Abs(spectrum[bin]); mag > peakMag {
			peakMag = mag
			peakBin = bin
		}
	}

	return float64(peakBin) * float64(sampleRate) / float64(len(samples))
}

// Energy returns the sum of squared samples.
func Energy(samples []float64) float64 {
	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}
	return sum
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
