// SPDX-License-Identifier: EPL-2.0

// Package wav writes rendered audio buffers as WAV files.
//
// It uses github.com/go-audio/wav for the container format and writes
// 16-bit linear PCM, mono or stereo, at any sample rate.
//
// # Writing WAV Files
//
//	buf, _, _ := engine.Render(notes, preset, 5.0, listener)
//	if err := wav.EncodeFile("out.wav", buf); err != nil {
//	    // Handle error
//	}
//
// Encode takes any io.WriteSeeker for callers managing their own files.
//
// # Sample Layout
//
// Buffer samples are interleaved per frame (left then right for stereo),
// which is exactly the WAV data-chunk layout, so conversion is a straight
// float-to-int16 pass with clamping.
//
// # Error Handling
//
//   - ErrEmptyBuffer: nothing to write
//   - ErrInvalidSampleRate: buffer carries a non-positive rate
//   - ErrUnsupportedChannels: only 1 or 2 channels are written
package wav
