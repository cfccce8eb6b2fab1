// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"
	"os"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/Tim-Albiges/Data-Sonification/synth"
	"github.com/Tim-Albiges/Data-Sonification/utils"
)

const bitDepth = 16

// Encode writes buf as a 16-bit PCM AIFF file with interleaved frames.
// Values outside [-1, 1] are clamped during conversion.
func Encode(w io.WriteSeeker, buf *synth.Buffer) error {
	if buf == nil || len(buf.Samples) == 0 {
		return ErrEmptyBuffer
	}
	if buf.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if buf.Channels != 1 && buf.Channels != 2 {
		return ErrUnsupportedChannels
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(utils.FloatToInt16(s))
	}

	enc := goaiff.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels)
	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// EncodeFile writes buf to an AIFF file at path, creating or truncating it.
func EncodeFile(path string, buf *synth.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
