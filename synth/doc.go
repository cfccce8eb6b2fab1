// SPDX-License-Identifier: EPL-2.0

// Package synth renders sequences of timed, pitched, spatially positioned
// notes into stereo audio buffers.
//
// This package contains the core synthesis building blocks:
//   - Source interface for sample streams
//   - Oscillator for waveform generation (closed forms and wavetables)
//   - Envelope for ADSR amplitude shaping
//   - LowPass for one-pole cutoff filtering
//   - Spatializer for 3D-to-stereo projection
//   - Engine for rendering and mixing whole note sequences
//
// # Source Interface
//
// The Source interface is the foundation of the voice pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Reset()
//	}
//
// Every synthesis stage implements it, so stages chain into pipelines the
// same way decoders and processors do elsewhere in this module. Streams are
// finite: ReadSamples reports io.EOF when a voice has run its length, and
// Reset rewinds a stage so the voice can be rendered again.
//
// # Voice Pipeline
//
// The engine builds one pipeline per note:
//
//	osc, _ := synth.NewHarmonicOscillator(weights, 440, 44100, 44100)
//	lp, _ := synth.NewLowPass(osc, 2000)
//	env, _ := synth.NewEnvelope(lp, adsr, 44100)
//	sp, _ := synth.NewSpatializer(env, srcPos, listenerPos, synth.DefaultSpatialParams())
//
// and drains the spatializer into a stereo segment that is mixed into the
// shared output buffer at the note's start offset.
//
// # Rendering
//
//	engine, _ := synth.NewEngine(44100)
//	preset, _ := synth.DefaultRegistry().Get("piano")
//	buf, report, err := engine.Render(notes, preset, 5.0, synth.Listener{})
//
// Render validates the whole request before synthesizing anything, so a
// returned error always means no work was done. Non-fatal conditions
// (aliasing pitches, clamped cutoffs, truncated notes, normalization) are
// collected in the returned Report rather than failing the render.
//
// # Sample Format
//
// Samples are float64 in [-1.0, 1.0]; 0.0 is silence. Stereo streams are
// interleaved (left, right per frame), matching the layout written by the
// formats packages.
//
// # Concurrency
//
// Voices are rendered in parallel; they share no mutable state. The output
// buffer has a single owner during the combining pass. Presets and the
// registry are immutable after construction and safe for concurrent reads.
package synth
