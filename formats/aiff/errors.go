// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrEmptyBuffer         = errors.New("buffer is nil or empty")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrUnsupportedChannels = errors.New("only mono and stereo buffers supported")
)
