// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"

	"github.com/Tim-Albiges/Data-Sonification/synth"
)

func TestEncodeFile_RoundTrip(t *testing.T) {
	t.Parallel()

	const rate = 8000
	buf := synth.NewBuffer(rate, 2, rate/10)
	for i := 0; i < buf.Frames(); i++ {
		v := 0.25 * math.Sin(2*math.Pi*220*float64(i)/rate)
		buf.Samples[2*i] = v
		buf.Samples[2*i+1] = v
	}

	path := filepath.Join(t.TempDir(), "tone.aiff")
	if err := EncodeFile(path, buf); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := goaiff.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("output is not a valid AIFF file")
	}

	got, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}

	format := got.Format
	if format.SampleRate != rate {
		t.Errorf("decoded sample rate = %d, want %d", format.SampleRate, rate)
	}
	if format.NumChannels != 2 {
		t.Errorf("decoded channels = %d, want 2", format.NumChannels)
	}
	if dec.BitDepth != 16 {
		t.Errorf("decoded bit depth = %d, want 16", dec.BitDepth)
	}
	if len(got.Data) != len(buf.Samples) {
		t.Fatalf("decoded %d samples, want %d", len(got.Data), len(buf.Samples))
	}

	for i, want := range buf.Samples {
		gotF := float64(got.Data[i]) / 32767.0
		if math.Abs(gotF-want) > 1.0/32767.0 {
			t.Fatalf("sample %d = %v, want %v ±1 LSB", i, gotF, want)
		}
	}
}

func TestEncode_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buf     *synth.Buffer
		wantErr error
	}{
		{name: "nil buffer", buf: nil, wantErr: ErrEmptyBuffer},
		{name: "empty buffer", buf: synth.NewBuffer(8000, 2, 0), wantErr: ErrEmptyBuffer},
		{
			name:    "bad sample rate",
			buf:     &synth.Buffer{SampleRate: -1, Channels: 1, Samples: make([]float64, 8)},
			wantErr: ErrInvalidSampleRate,
		},
		{
			name:    "too many channels",
			buf:     &synth.Buffer{SampleRate: 8000, Channels: 3, Samples: make([]float64, 9)},
			wantErr: ErrUnsupportedChannels,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := os.Create(filepath.Join(t.TempDir(), "out.aiff"))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			if err := Encode(f, tt.buf); !errors.Is(err, tt.wantErr) {
				t.Errorf("Encode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
