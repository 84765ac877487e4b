// SPDX-License-Identifier: MIT

package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pjplot/series"
	"github.com/katalvlaran/pjplot/storage"
	"github.com/stretchr/testify/require"
)

func TestRamp(t *testing.T) {
	a, err := series.Ramp(5)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3, 4}, a.Values().Clone())
	require.Equal(t, 1, a.Rank())
	require.Equal(t, storage.KindGrowable, a.StorageKind())
}

func TestBadSize(t *testing.T) {
	for _, gen := range []func(int) error{
		func(n int) error { _, err := series.Ramp(n); return err },
		func(n int) error { _, err := series.Pulse(n); return err },
		func(n int) error { _, err := series.Chirp(n); return err },
	} {
		require.ErrorIs(t, gen(0), series.ErrBadSize)
		require.ErrorIs(t, gen(-4), series.ErrBadSize)
	}
}

func TestPulseDefaults(t *testing.T) {
	a, err := series.Pulse(16)
	require.NoError(t, err)
	// f=1/8, duty 0.5: four on, four off.
	want := []float64{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}
	require.Equal(t, want, a.Values().Clone())
}

func TestPulseTriangularWithTrend(t *testing.T) {
	a, err := series.Pulse(5, series.WithTriangular(), series.WithFrequency(0.25),
		series.WithAmplitude(2), series.WithTrend(1))
	require.NoError(t, err)
	want := []float64{0, 1 + 1, 2 + 2, 1 + 3, 0 + 4}
	got := a.Values().Clone()
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestChirpBoundedAndDeterministic(t *testing.T) {
	a, err := series.Chirp(64, series.WithAmplitude(3))
	require.NoError(t, err)
	for _, v := range a.All() {
		require.LessOrEqual(t, math.Abs(v), 3.0+1e-12)
	}

	b, err := series.Chirp(64, series.WithAmplitude(3))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	one, err := series.Chirp(1)
	require.NoError(t, err)
	require.InDelta(t, math.Sin(2*math.Pi*0.02), one.At(0), 1e-12)
}

func TestNoiseIsSeeded(t *testing.T) {
	a, err := series.Pulse(32, series.WithNoise(0.5), series.WithSeed(7))
	require.NoError(t, err)
	b, err := series.Pulse(32, series.WithNoise(0.5), series.WithSeed(7))
	require.NoError(t, err)
	c, err := series.Pulse(32, series.WithNoise(0.5), series.WithSeed(8))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { series.WithAmplitude(0) })
	require.Panics(t, func() { series.WithFrequency(-1) })
	require.Panics(t, func() { series.WithSweepTo(0) })
	require.Panics(t, func() { series.WithDuty(1.5) })
	require.Panics(t, func() { series.WithNoise(-0.1) })
	require.NotPanics(t, func() { series.WithTrend(-3) })
}
