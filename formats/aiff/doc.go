// SPDX-License-Identifier: EPL-2.0

// Package aiff writes rendered audio buffers as AIFF files.
//
// This package uses github.com/go-audio/aiff for the container format and
// writes 16-bit PCM, mono or stereo. It mirrors the wav package; pick
// whichever container the consuming tool expects.
//
//	buf, _, _ := engine.Render(notes, preset, 5.0, listener)
//	err := aiff.EncodeFile("out.aiff", buf)
package aiff
