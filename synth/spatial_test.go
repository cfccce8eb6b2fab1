// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/Tim-Albiges/Data-Sonification/internal/synthtest"
)

func newTestSpatializer(t *testing.T, src Source, pos Vec3) *Spatializer {
	t.Helper()

	sp, err := NewSpatializer(src, pos, Vec3{}, DefaultSpatialParams())
	if err != nil {
		t.Fatalf("NewSpatializer() error = %v", err)
	}
	return sp
}

func TestSpatializer_EqualPowerPanLaw(t *testing.T) {
	t.Parallel()

	// Positions on the unit circle sit at the distance floor, so the
	// distance gain is 1 and the pan gains alone must satisfy
	// gainL^2 + gainR^2 == 1.
	for deg := 0; deg < 360; deg += 15 {
		azimuth := float64(deg) * math.Pi / 180
		pos := Vec3{X: math.Sin(azimuth), Y: math.Cos(azimuth)}

		src := synthtest.NewSilentSource(44100, 1, 10)
		sp := newTestSpatializer(t, src, pos)

		sum := sp.gainL*sp.gainL + sp.gainR*sp.gainR
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("azimuth %d°: gainL²+gainR² = %v, want 1", deg, sum)
		}
	}
}

func TestSpatializer_CollocatedSourceIsCentered(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSilentSource(44100, 1, 10)
	sp := newTestSpatializer(t, src, Vec3{})

	if sp.pan != 0 {
		t.Errorf("pan = %v, want 0", sp.pan)
	}
	if math.Abs(sp.gainL-sp.gainR) > 1e-12 {
		t.Errorf("gains differ for centered source: L=%v R=%v", sp.gainL, sp.gainR)
	}
	if sp.delaySamples != 0 {
		t.Errorf("delaySamples = %v, want 0", sp.delaySamples)
	}
}

func TestSpatializer_HardRightPansRight(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSilentSource(44100, 1, 10)
	sp := newTestSpatializer(t, src, Vec3{X: 1})

	if math.Abs(sp.pan-1) > 1e-12 {
		t.Errorf("pan = %v, want 1", sp.pan)
	}
	if sp.gainL > 1e-9 {
		t.Errorf("gainL = %v, want ~0 for hard right", sp.gainL)
	}
	if math.Abs(sp.gainR-1) > 1e-9 {
		t.Errorf("gainR = %v, want ~1 for hard right", sp.gainR)
	}
	// The far (left) ear hears the wavefront late.
	if !sp.delayLeft || sp.delaySamples <= 0 {
		t.Errorf("expected left-ear delay, got delayLeft=%v delaySamples=%v",
			sp.delayLeft, sp.delaySamples)
	}
}

func TestSpatializer_MirroredPositionsSwapGains(t *testing.T) {
	t.Parallel()

	left := newTestSpatializer(t, synthtest.NewSilentSource(44100, 1, 10), Vec3{X: -3, Y: 4})
	right := newTestSpatializer(t, synthtest.NewSilentSource(44100, 1, 10), Vec3{X: 3, Y: 4})

	if math.Abs(left.gainL-right.gainR) > 1e-12 || math.Abs(left.gainR-right.gainL) > 1e-12 {
		t.Errorf("mirrored gains not swapped: left=(%v,%v) right=(%v,%v)",
			left.gainL, left.gainR, right.gainL, right.gainR)
	}
}

func TestSpatializer_InverseDistanceAttenuation(t *testing.T) {
	t.Parallel()

	const rate = 44100
	peakAt := func(distance float64) float64 {
		src := synthtest.NewSineSource(rate, 1, rate/10, 440)
		sp := newTestSpatializer(t, src, Vec3{Y: distance})
		return synthtest.Peak(readAll(t, sp, rate/5))
	}

	near := peakAt(2)
	far := peakAt(8)

	if near <= far {
		t.Errorf("peak at distance 2 (%v) should exceed peak at distance 8 (%v)", near, far)
	}
	// 1/d law: four times the distance, a quarter of the amplitude.
	if ratio := near / far; math.Abs(ratio-4) > 0.1 {
		t.Errorf("near/far peak ratio = %v, want ~4", ratio)
	}
}

func TestSpatializer_DistanceFloorPreventsBlowup(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSilentSource(44100, 1, 10)
	sp := newTestSpatializer(t, src, Vec3{X: 0.001})

	if g := sp.gainL*sp.gainL + sp.gainR*sp.gainR; g > 1+1e-9 {
		t.Errorf("near-field gain energy = %v, want ≤ 1", g)
	}
}

func TestSpatializer_SilenceInSilenceOut(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSilentSource(44100, 1, 1000)
	sp := newTestSpatializer(t, src, Vec3{X: 2, Y: -3, Z: 1})

	for i, v := range readAll(t, sp, 2000) {
		if v != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
		}
	}
}

func TestSpatializer_StereoLengthMatchesMono(t *testing.T) {
	t.Parallel()

	const frames = 777
	src := synthtest.NewSineSource(44100, 1, frames, 440)
	sp := newTestSpatializer(t, src, Vec3{X: 1, Y: 2})

	got := readAll(t, sp, frames*2)
	if len(got) != frames*2 {
		t.Errorf("stereo samples = %d, want %d", len(got), frames*2)
	}
}

func TestSpatializer_DepthCueDullsRearSources(t *testing.T) {
	t.Parallel()

	const rate = 44100
	energyAt := func(pos Vec3) float64 {
		src := synthtest.NewSineSource(rate, 1, rate/2, 6000)
		sp := newTestSpatializer(t, src, pos)
		return synthtest.Energy(readAll(t, sp, rate))
	}

	ahead := energyAt(Vec3{Y: 6})
	behind := energyAt(Vec3{Y: -6})

	if behind >= ahead {
		t.Errorf("6kHz energy behind (%v) should be below energy ahead (%v)", behind, ahead)
	}
}

func TestSpatializer_DepthCutoffDecreasesWithDepth(t *testing.T) {
	t.Parallel()

	src := func() Source { return synthtest.NewSilentSource(44100, 1, 10) }

	front := newTestSpatializer(t, src(), Vec3{Y: 5})
	if front.depthActive {
		t.Error("depth cue should be inactive for sources in front")
	}

	shallow := newTestSpatializer(t, src(), Vec3{Y: -2})
	deep := newTestSpatializer(t, src(), Vec3{Y: -20})

	if !shallow.depthActive || !deep.depthActive {
		t.Fatal("depth cue should be active for sources behind the listener")
	}
	if deep.depthCutoff >= shallow.depthCutoff {
		t.Errorf("cutoff at depth 20 (%v) should be below cutoff at depth 2 (%v)",
			deep.depthCutoff, shallow.depthCutoff)
	}

	min := DefaultSpatialParams().DepthCutoffMin
	if deep.depthCutoff < min {
		t.Errorf("cutoff %v fell below the configured floor %v", deep.depthCutoff, min)
	}
}

func TestSpatializer_ResetReproduces(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSineSource(44100, 1, 500, 440)
	sp := newTestSpatializer(t, src, Vec3{X: 4, Y: -2})

	first := readAll(t, sp, 1000)
	sp.Reset()
	second := readAll(t, sp, 1000)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after Reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSpatializer_OddDstRejected(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSineSource(44100, 1, 10, 440)
	sp := newTestSpatializer(t, src, Vec3{})

	if _, err := sp.ReadSamples(make([]float64, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(odd) err = %v, want ErrInvalidDstSize", err)
	}
}

func TestSpatializer_RejectsStereoSource(t *testing.T) {
	t.Parallel()

	src := synthtest.NewSilentSource(44100, 2, 10)
	if _, err := NewSpatializer(src, Vec3{}, Vec3{}, DefaultSpatialParams()); !errors.Is(err, ErrNotMono) {
		t.Errorf("NewSpatializer(stereo) err = %v, want ErrNotMono", err)
	}
}
