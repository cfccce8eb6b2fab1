// SPDX-License-Identifier: EPL-2.0

package synth

// Source is a finite stream of float64 audio samples in [-1, 1].
//
// Samples are interleaved when Channels() > 1. ReadSamples reports io.EOF
// once the stream is exhausted; n == 0 with err == io.EOF means nothing is
// left. Every Source is restartable: Reset rewinds it to the first sample
// so the same voice can be rendered again.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float64 samples.
	// Returns number of float64 values written (not frames).
	ReadSamples(dst []float64) (n int, err error)
	// Reset rewinds the stream to its beginning.
	Reset()
}
