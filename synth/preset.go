// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"sort"
)

// FilterType selects a preset's default filter, applied when a note carries
// no cutoff of its own.
type FilterType int

const (
	FilterNone FilterType = iota
	FilterLowPass
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterLowPass:
		return "low-pass"
	}
	return fmt.Sprintf("FilterType(%d)", int(f))
}

// Preset is an immutable named timbre/envelope/filter configuration.
//
// Timbre is chosen in order of precedence: Harmonics (a per-voice wavetable
// is built from the weights, skipping anything above Nyquist), then Table
// when Shape is ShapeTable, then the closed-form Shape.
type Preset struct {
	Name string

	Shape Shape
	// Table is the custom wavetable used when Shape is ShapeTable.
	Table []float64
	// Harmonics are per-harmonic amplitude weights; index 0 is the
	// fundamental.
	Harmonics []float64

	// Vibrato as phase modulation; a rate of 0 disables it.
	VibratoRate  float64
	VibratoDepth float64

	Envelope ADSR

	// DefaultFilter and FilterCutoff apply when a note's own cutoff is
	// absent.
	DefaultFilter FilterType
	FilterCutoff  float64
}

// Registry is a read-only mapping from instrument name to preset. It is
// fully populated at construction and never mutated afterwards, so
// concurrent lookups need no locking.
type Registry struct {
	presets map[string]Preset
}

// NewRegistry builds a registry from the given presets, copying them into
// an internal table keyed by name.
func NewRegistry(presets ...Preset) *Registry {
	table := make(map[string]Preset, len(presets))
	for _, p := range presets {
		table[p.Name] = p.clone()
	}
	return &Registry{presets: table}
}

// Get looks up a preset by exact name. An unknown name is a validation
// error carrying the offending name.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, validationErr(-1, "preset",
			fmt.Errorf("%w: %q", ErrUnknownPreset, name))
	}
	return p.clone(), nil
}

// clone copies the slice fields so callers and the registry never share
// backing arrays.
func (p Preset) clone() Preset {
	out := p
	if p.Table != nil {
		out.Table = append([]float64(nil), p.Table...)
	}
	if p.Harmonics != nil {
		out.Harmonics = append([]float64(nil), p.Harmonics...)
	}
	return out
}

// Names returns the registered preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinPresets are the stock instruments: harmonic weights give each its
// timbre, strings and winds carry a slow vibrato.
var builtinPresets = []Preset{
	{
		Name:      "piano",
		Shape:     ShapeTable,
		Harmonics: []float64{1.0, 0.5, 0.2, 0.1},
		Envelope:  ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.6, Release: 0.4},
	},
	{
		Name:         "violin",
		Shape:        ShapeTable,
		Harmonics:    []float64{1.0, 0.8, 0.7, 0.6, 0.5, 0.4},
		VibratoRate:  5.0,
		VibratoDepth: 2.0,
		Envelope:     ADSR{Attack: 0.2, Decay: 0.1, Sustain: 0.8, Release: 0.3},
	},
	{
		Name:         "cello",
		Shape:        ShapeTable,
		Harmonics:    []float64{1.0, 0.8, 0.5, 0.3},
		VibratoRate:  4.5,
		VibratoDepth: 3.0,
		Envelope:     ADSR{Attack: 0.15, Decay: 0.1, Sustain: 0.7, Release: 0.4},
	},
	{
		// Odd harmonics only
		Name:         "flute",
		Shape:        ShapeTable,
		Harmonics:    []float64{1.0, 0.0, 0.5, 0.0, 0.2},
		VibratoRate:  6.0,
		VibratoDepth: 1.5,
		Envelope:     ADSR{Attack: 0.1, Decay: 0.05, Sustain: 0.9, Release: 0.2},
	},
}

var defaultRegistry = NewRegistry(builtinPresets...)

// DefaultRegistry returns the registry of built-in instruments.
func DefaultRegistry() *Registry { return defaultRegistry }
