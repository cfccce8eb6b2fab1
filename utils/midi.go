// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MIDIToFreq converts a MIDI note number to its frequency in Hz
// (69 is A4 at 440 Hz, equal temperament).
func MIDIToFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12)
}

// Scale linearly maps every value of data from its own min/max range onto
// [outMin, outMax]. When all values are equal the result is all outMin,
// avoiding a division by zero.
func Scale(data []float64, outMin, outMax float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}

	dMin, dMax := data[0], data[0]
	for _, v := range data[1:] {
		if v < dMin {
			dMin = v
		}
		if v > dMax {
			dMax = v
		}
	}

	if dMax == dMin {
		for i := range out {
			out[i] = outMin
		}
		return out
	}

	for i, v := range data {
		out[i] = outMin + (v-dMin)*(outMax-outMin)/(dMax-dMin)
	}
	return out
}
