// SPDX-License-Identifier: EPL-2.0

// Package sonify renders sequences of timed, spatially positioned notes
// into stereo audio files.
//
// This package offers convenient one-call rendering on top of the synth
// subpackage, which does the actual synthesis: wavetable oscillators, ADSR
// envelopes, one-pole filtering, and 3D-to-stereo spatial projection.
//
// # Quick Start
//
// The simplest way to render a note sequence is Render:
//
//	notes := []synth.Note{
//	    synth.NoteAt(440.0, 0.0, 0.5),
//	    synth.NoteAt(554.4, 0.5, 0.5),
//	}
//	buf, report, err := sonify.Render(notes, "piano", 1.5, 44100, synth.Listener{})
//
// buf holds interleaved stereo float64 samples in [-1, 1]; report lists any
// non-fatal conditions (clamped cutoffs, truncated notes, normalization).
//
// # Spatial Audio
//
// Each note carries a 3D position, heard from the listener's position:
//
//	notes := []synth.Note{{
//	    Frequency: 330,
//	    Start:     0,
//	    Duration:  1,
//	    Position:  synth.Vec3{X: -5, Y: 10, Z: 0}, // ahead and to the left
//	}}
//	buf, _, _ := sonify.Render(notes, "cello", 2.0, 44100,
//	    synth.Listener{Position: synth.Vec3{}})
//
// Sources pan with equal power across the stereo field, fade with distance,
// and dull as they move behind the listener.
//
// # Instruments
//
// The built-in registry provides "piano", "violin", "cello" and "flute".
// An unknown name is a validation error carrying the offending name. For
// custom timbre, envelope or filter settings, build a synth.Preset and use
// synth.Engine directly.
//
// # Writing Audio Files
//
// The formats subpackages persist a rendered buffer:
//
//	// WAV
//	wav.EncodeFile("out.wav", buf)
//
//	// AIFF
//	aiff.EncodeFile("out.aiff", buf)
//
// or use RenderWAVFile to render and write in one step.
//
// # Error Handling
//
// Malformed inputs (non-positive frequency or duration, negative start,
// unknown preset) surface as *synth.ValidationError before any synthesis
// begins; the error names the note index and offending field. Non-fatal
// conditions never abort a render and are reported through synth.Report.
package sonify
