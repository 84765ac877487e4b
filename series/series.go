// SPDX-License-Identifier: MIT

// Package series generates deterministic 1-D sample arrays for plotting:
// a ramp, a rectangular/triangular pulse and a linear chirp.
//
// Every generator returns a dynamic *array.Array[float64] of rank 1.
// For a fixed n and option list the output is identical across runs.
package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pjplot/array"
)

// ErrBadSize is returned for n < 1.
var ErrBadSize = errors.New("series: size must be >= 1")

const (
	defPulseFreq = 0.125 // period 8
	defChirpF0   = 0.02
	defChirpF1   = 0.25
	tau          = 2 * math.Pi
)

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) (*array.Array[float64], error) {
	a, err := alloc("Ramp", n)
	if err != nil {
		return nil, err
	}
	a.Apply(func(i int, _ float64) float64 { return float64(i) })

	return a, nil
}

// Pulse returns a length-n pulse train.
//   - Rectangular: A while frac(i*f) < duty, else 0.
//   - Triangular:  A * (1 - |2*frac(i*f) - 1|).
//
// Trend and noise are added after the base waveform.
func Pulse(n int, opts ...Option) (*array.Array[float64], error) {
	a, err := alloc("Pulse", n)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	f := cfg.frequency
	if f == 0 {
		f = defPulseFreq
	}

	buf := a.Slice()
	for i := range buf {
		frac := math.Mod(float64(i)*f, 1)
		var base float64
		switch {
		case cfg.triangular:
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			base = cfg.amplitude
		}
		buf[i] = finish(cfg, i, base)
	}

	return a, nil
}

// Chirp returns a length-n linear chirp sweeping from f0 to f1:
//
//	f_i = f0 + (f1-f0) * i/(n-1)
//	θ_{i+1} = θ_i + 2π f_i
//	y_i = A sin(θ_i)
func Chirp(n int, opts ...Option) (*array.Array[float64], error) {
	a, err := alloc("Chirp", n)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	f0, f1 := cfg.frequency, cfg.sweepTo
	if f0 == 0 {
		f0 = defChirpF0
	}
	if f1 == 0 {
		f1 = defChirpF1
	}

	theta := 0.0
	buf := a.Slice()
	for i := range buf {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		buf[i] = finish(cfg, i, cfg.amplitude*math.Sin(theta))
	}

	return a, nil
}

func alloc(op string, n int) (*array.Array[float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", op, n, ErrBadSize)
	}
	a, err := array.NewDynamic[float64](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// finish adds trend and noise to a base sample.
func finish(cfg config, i int, base float64) float64 {
	base += cfg.trendK * float64(i)
	if cfg.noiseSigma > 0 {
		base += cfg.noiseSigma * cfg.rng.NormFloat64()
	}

	return base
}
