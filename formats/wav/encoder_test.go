// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/Tim-Albiges/Data-Sonification/synth"
)

func testBuffer(t *testing.T) *synth.Buffer {
	t.Helper()

	const rate = 8000
	buf := synth.NewBuffer(rate, 2, rate/10)
	for i := 0; i < buf.Frames(); i++ {
		v := 0.5 * math.Sin(2*math.Pi*440*float64(i)/rate)
		buf.Samples[2*i] = v
		buf.Samples[2*i+1] = -v
	}
	return buf
}

func TestEncodeFile_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := testBuffer(t)
	path := filepath.Join(t.TempDir(), "tone.wav")

	if err := EncodeFile(path, buf); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	got, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}

	if dec.SampleRate != uint32(buf.SampleRate) {
		t.Errorf("decoded sample rate = %d, want %d", dec.SampleRate, buf.SampleRate)
	}
	if dec.NumChans != 2 {
		t.Errorf("decoded channels = %d, want 2", dec.NumChans)
	}
	if dec.BitDepth != 16 {
		t.Errorf("decoded bit depth = %d, want 16", dec.BitDepth)
	}
	if len(got.Data) != len(buf.Samples) {
		t.Fatalf("decoded %d samples, want %d", len(got.Data), len(buf.Samples))
	}

	// 16-bit quantization bounds the round-trip error.
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
			buf:     &synth.Buffer{SampleRate: 0, Channels: 2, Samples: make([]float64, 16)},
			wantErr: ErrInvalidSampleRate,
		},
		{
			name:    "too many channels",
			buf:     &synth.Buffer{SampleRate: 8000, Channels: 6, Samples: make([]float64, 12)},
			wantErr: ErrUnsupportedChannels,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
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

func TestEncode_ClampsOutOfRangeSamples(t *testing.T) {
	t.Parallel()

	buf := synth.NewBuffer(8000, 1, 3)
	buf.Samples[0] = 2.5
	buf.Samples[1] = -3.0
	buf.Samples[2] = 0.0

	path := filepath.Join(t.TempDir(), "hot.wav")
	if err := EncodeFile(path, buf); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := gowav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if got.Data[0] != 32767 {
		t.Errorf("clamped positive sample = %d, want 32767", got.Data[0])
	}
	if got.Data[1] != -32767 {
		t.Errorf("clamped negative sample = %d, want -32767", got.Data[1])
	}
	if got.Data[2] != 0 {
		t.Errorf("zero sample = %d, want 0", got.Data[2])
	}
}
