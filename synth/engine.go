// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WarningKind classifies non-fatal render conditions.
type WarningKind int

const (
	// WarnAliasing: a note's fundamental is at or above Nyquist.
	WarnAliasing WarningKind = iota
	// WarnCutoffClamped: a filter cutoff outside (0, Nyquist) was clamped.
	WarnCutoffClamped
	// WarnTruncated: a note extended past the end of the buffer and was cut.
	WarnTruncated
	// WarnClipping: the mix peak exceeded 1.0 and the buffer was scaled down.
	WarnClipping
)

func (k WarningKind) String() string {
	switch k {
	case WarnAliasing:
		return "aliasing"
	case WarnCutoffClamped:
		return "cutoff clamped"
	case WarnTruncated:
		return "truncated"
	case WarnClipping:
		return "clipping"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal condition observed during a render. NoteIndex is
// -1 for conditions that concern the whole mix.
type Warning struct {
	NoteIndex int
	Kind      WarningKind
	Message   string
}

// Report summarizes the non-fatal side of a render: warnings, the pre-scale
// peak, and whether the final normalization had to scale the mix down.
type Report struct {
	Warnings []Warning
	Clipped  bool
	Peak     float64
}

// Engine renders note sequences into stereo buffers.
//
// Voices are synthesized concurrently: each note's pipeline reads only
// immutable inputs and writes an independent segment, then one combining
// pass owns the output buffer and adds the segments in note order, so the
// floating-point summation order is fixed. Equality checks on rendered
// audio should still use tolerances, never bit-exact comparison.
type Engine struct {
	sampleRate int
	spatial    SpatialParams
	workers    int
}

// NewEngine creates an engine rendering at sampleRate Hz.
func NewEngine(sampleRate int) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, validationErr(-1, "sample_rate", ErrNonPositiveSampleRate)
	}
	return &Engine{
		sampleRate: sampleRate,
		spatial:    DefaultSpatialParams(),
		workers:    runtime.NumCPU(),
	}, nil
}

func (e *Engine) SampleRate() int { return e.sampleRate }

// SetSpatialParams replaces the spatializer tuning constants.
func (e *Engine) SetSpatialParams(p SpatialParams) { e.spatial = p }

// SetWorkers caps the number of concurrently synthesized voices.
func (e *Engine) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

type voiceResult struct {
	startFrame int
	samples    []float64 // interleaved stereo
	warnings   []Warning
}

// Render synthesizes every note with the preset, places it in space relative
// to the listener, and mixes the voices into one stereo buffer of
// totalDuration seconds.
//
// All inputs are validated before any synthesis starts; a validation error
// means no partial buffer was produced. An empty note list yields a silent
// buffer. If the accumulated peak exceeds 1.0 the whole buffer is scaled by
// its reciprocal, preserving relative dynamics, and Report.Clipped is set.
func (e *Engine) Render(notes []Note, preset Preset, totalDuration float64, listener Listener) (*Buffer, *Report, error) {
	if totalDuration <= 0 {
		return nil, nil, validationErr(-1, "total_duration", ErrNonPositiveTotalDuration)
	}
	for i, n := range notes {
		if err := n.Validate(i); err != nil {
			return nil, nil, err
		}
	}

	frames := int(math.Round(totalDuration * float64(e.sampleRate)))
	buf := NewBuffer(e.sampleRate, 2, frames)
	report := &Report{}

	results := make([]voiceResult, len(notes))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)
	for i, note := range notes {
		i, note := i, note
		g.Go(func() error {
			res, err := e.renderVoice(i, note, preset, listener)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Combining pass: the only writer of the shared buffer.
	for i := range results {
		res := &results[i]
		report.Warnings = append(report.Warnings, res.warnings...)

		segFrames := len(res.samples) / 2
		if segFrames == 0 {
			continue
		}

		start := res.startFrame
		end := start + segFrames
		if start >= frames || end > frames {
			report.Warnings = append(report.Warnings, Warning{
				NoteIndex: i,
				Kind:      WarnTruncated,
				Message:   "note extends past total duration, truncated at buffer end",
			})
			if start >= frames {
				continue
			}
			end = frames
		}

		for f := start; f < end; f++ {
			buf.Samples[2*f] += res.samples[2*(f-start)]
			buf.Samples[2*f+1] += res.samples[2*(f-start)+1]
		}
	}

	report.Peak = buf.Peak()
	if report.Peak > 1 {
		inv := 1 / report.Peak
		for j := range buf.Samples {
			buf.Samples[j] *= inv
		}
		report.Clipped = true
		report.Warnings = append(report.Warnings, Warning{
			NoteIndex: -1,
			Kind:      WarnClipping,
			Message:   fmt.Sprintf("mix peak %.3f exceeded unity, scaled down", report.Peak),
		})
	}

	return buf, report, nil
}

// renderVoice synthesizes one note's stereo segment:
// oscillator -> low-pass -> envelope -> spatializer.
func (e *Engine) renderVoice(index int, note Note, preset Preset, listener Listener) (voiceResult, error) {
	res := voiceResult{
		startFrame: int(math.Round(note.Start * float64(e.sampleRate))),
	}

	frames := int(math.Round(note.Duration * float64(e.sampleRate)))
	if frames == 0 {
		return res, nil
	}

	if note.Frequency >= float64(e.sampleRate)/2 {
		res.warnings = append(res.warnings, Warning{
			NoteIndex: index,
			Kind:      WarnAliasing,
			Message:   fmt.Sprintf("frequency %.1f Hz is at or above Nyquist", note.Frequency),
		})
	}

	osc, err := e.buildOscillator(preset, note.Frequency, frames)
	if err != nil {
		return res, validationErr(index, "preset", err)
	}
	if preset.VibratoRate > 0 {
		osc.SetVibrato(preset.VibratoRate, preset.VibratoDepth)
	}

	var src Source = osc
	if cutoff, ok := resolveCutoff(note, preset); ok {
		lp, err := NewLowPass(src, cutoff)
		if err != nil {
			return res, err
		}
		if lp.Clamped() {
			res.warnings = append(res.warnings, Warning{
				NoteIndex: index,
				Kind:      WarnCutoffClamped,
				Message:   fmt.Sprintf("cutoff %.1f Hz clamped to %.1f Hz", cutoff, lp.Cutoff()),
			})
		}
		src = lp
	}

	env, err := NewEnvelope(src, preset.Envelope, frames)
	if err != nil {
		return res, err
	}

	sp, err := NewSpatializer(env, note.Position, listener.Position, e.spatial)
	if err != nil {
		return res, err
	}

	res.samples = make([]float64, frames*2)
	total := 0
	for total < len(res.samples) {
		n, err := sp.ReadSamples(res.samples[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return res, nil
}

func (e *Engine) buildOscillator(preset Preset, freq float64, frames int) (*Oscillator, error) {
	switch {
	case len(preset.Harmonics) > 0:
		return NewHarmonicOscillator(preset.Harmonics, freq, e.sampleRate, frames)
	case preset.Shape == ShapeTable:
		return NewTableOscillator(preset.Table, freq, e.sampleRate, frames)
	default:
		return NewOscillator(preset.Shape, freq, e.sampleRate, frames)
	}
}

// resolveCutoff picks the note's own cutoff when present, otherwise the
// preset's default filter.
func resolveCutoff(note Note, preset Preset) (float64, bool) {
	if note.Cutoff.Set {
		return note.Cutoff.Hz, true
	}
	if preset.DefaultFilter == FilterLowPass {
		return preset.FilterCutoff, true
	}
	return 0, false
}
