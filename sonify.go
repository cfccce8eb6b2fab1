// SPDX-License-Identifier: EPL-2.0

package sonify

import (
	"github.com/Tim-Albiges/Data-Sonification/formats/wav"
	"github.com/Tim-Albiges/Data-Sonification/synth"
)

// Render is a high-level convenience function that renders a note sequence
// with a built-in instrument into a stereo buffer.
//
// It looks up instrument in the default registry, builds an engine at
// sampleRate, and renders totalDuration seconds of audio heard from the
// listener's position.
//
// Returns:
//   - *synth.Buffer: interleaved stereo samples in [-1, 1]
//   - *synth.Report: non-fatal warnings, the pre-normalization peak, and
//     whether the mix was scaled down
//   - error: a *synth.ValidationError when any input is malformed; the
//     render fails atomically and no buffer is produced
//
// Note: This covers the common case. For custom presets, spatial tuning or
// a bounded worker count, use synth.NewEngine directly.
func Render(notes []synth.Note, instrument string, totalDuration float64, sampleRate int, listener synth.Listener) (*synth.Buffer, *synth.Report, error) {
	preset, err := synth.DefaultRegistry().Get(instrument)
	if err != nil {
		return nil, nil, err
	}

	engine, err := synth.NewEngine(sampleRate)
	if err != nil {
		return nil, nil, err
	}

	return engine.Render(notes, preset, totalDuration, listener)
}

// RenderWAVFile renders a note sequence and writes the result to a 16-bit
// stereo WAV file at path in one step.
func RenderWAVFile(path string, notes []synth.Note, instrument string, totalDuration float64, sampleRate int, listener synth.Listener) (*synth.Report, error) {
	buf, report, err := Render(notes, instrument, totalDuration, sampleRate, listener)
	if err != nil {
		return nil, err
	}

	if err := wav.EncodeFile(path, buf); err != nil {
		return nil, err
	}
	return report, nil
}
