// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tim-Albiges/Data-Sonification/formats/aiff"
	"github.com/Tim-Albiges/Data-Sonification/formats/wav"
	"github.com/Tim-Albiges/Data-Sonification/synth"
	"github.com/Tim-Albiges/Data-Sonification/utils"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sonify",
	Short: "Render spatialized synthetic audio scenes",
	Long: `Sonify renders sequences of notes into stereo audio files.
Each note has a pitch, a start time, a duration and a 3D position;
the renderer synthesizes the voices, places them around the listener
and mixes them into a normalized stereo buffer.`,
	Version: version,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a demo scene of a source circling the listener",
	Long: `Render an ascending scale whose source spirals around the
listener, demonstrating panning, distance attenuation and the rear
depth cue.

Examples:
  sonify demo -o demo.wav
  sonify demo -o demo.aiff --format aiff --instrument violin`,
	RunE: runDemo,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in instrument presets",
	RunE:  runPresets,
}

var (
	// demo flags
	outputPath string
	format     string
	instrument string
	duration   float64
	sampleRate int
	noteCount  int
)

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(presetsCmd)

	demoCmd.Flags().StringVarP(&outputPath, "output", "o", "demo.wav", "Output audio file")
	demoCmd.Flags().StringVarP(&format, "format", "f", "", "Output format (wav or aiff, default: from extension)")
	demoCmd.Flags().StringVarP(&instrument, "instrument", "i", "piano", "Instrument preset")
	demoCmd.Flags().Float64VarP(&duration, "duration", "d", 8.0, "Scene duration in seconds")
	demoCmd.Flags().IntVarP(&sampleRate, "rate", "r", 44100, "Sample rate in Hz")
	demoCmd.Flags().IntVarP(&noteCount, "notes", "n", 16, "Number of notes in the scene")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if noteCount < 1 {
		return fmt.Errorf("invalid note count: %d", noteCount)
	}

	enc, err := resolveFormat(outputPath, format)
	if err != nil {
		return err
	}

	preset, err := synth.DefaultRegistry().Get(instrument)
	if err != nil {
		return err
	}
	engine, err := synth.NewEngine(sampleRate)
	if err != nil {
		return err
	}

	notes := demoScene(noteCount, duration)
	buf, report, err := engine.Render(notes, preset, duration, synth.Listener{})
	if err != nil {
		return err
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}

	if err := enc(outputPath, buf); err != nil {
		return err
	}

	fmt.Printf("%s: %.1fs, %d Hz, %d notes (%s), peak %.3f\n",
		outputPath, buf.Duration(), buf.SampleRate, len(notes), preset.Name, report.Peak)
	return nil
}

// demoScene lays an ascending scale on a spiral: the source starts ahead
// of the listener, circles around and recedes behind, so every spatial cue
// is audible in one pass.
func demoScene(count int, total float64) []synth.Note {
	ts := make([]float64, count)
	for i := range ts {
		ts[i] = float64(i)
	}

	// C4 to C6 climb, one full turn, moving away as it goes.
	midis := utils.Scale(ts, 60, 84)
	angles := utils.Scale(ts, 0, 2*math.Pi)
	dists := utils.Scale(ts, 2, 8)

	notes := make([]synth.Note, count)
	step := total / float64(count)
	for i := range notes {
		notes[i] = synth.Note{
			Frequency: utils.MIDIToFreq(int(math.Round(midis[i]))),
			Start:     ts[i] * step,
			Duration:  step * 1.5,
			Position: synth.Vec3{
				X: dists[i] * math.Sin(angles[i]),
				Y: dists[i] * math.Cos(angles[i]),
			},
		}
	}
	return notes
}

func runPresets(cmd *cobra.Command, args []string) error {
	reg := synth.DefaultRegistry()
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return err
		}

		desc := fmt.Sprintf("%d harmonics", len(p.Harmonics))
		if p.VibratoRate > 0 {
			desc += fmt.Sprintf(", vibrato %.1f Hz", p.VibratoRate)
		}
		fmt.Printf("%-8s %s\n", name, desc)
	}
	return nil
}

// resolveFormat picks an encoder from the explicit --format flag, falling
// back to the output file extension.
func resolveFormat(path, explicit string) (func(string, *synth.Buffer) error, error) {
	f := explicit
	if f == "" {
		switch {
		case strings.HasSuffix(path, ".aiff"), strings.HasSuffix(path, ".aif"):
			f = "aiff"
		default:
			f = "wav"
		}
	}

	switch f {
	case "wav":
		return wav.EncodeFile, nil
	case "aiff":
		return aiff.EncodeFile, nil
	}
	return nil, fmt.Errorf("unknown format: %q (want wav or aiff)", f)
}
