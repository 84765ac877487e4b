// SPDX-License-Identifier: MIT
// Package: pjplot/series
//
// options.go - functional options for the sample generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves return errors, never panic.
//   • Determinism: noise draws come from a seeded source (WithSeed), or from
//     a source seeded with defaultSeed when no seed was given.
//   • Options apply in order; later options override earlier ones.

package series

import "math/rand"

// Option customizes a generator by mutating its config.
type Option func(*config)

// config aggregates all generator knobs.
type config struct {
	rng        *rand.Rand
	amplitude  float64 // >0
	frequency  float64 // >0; 0 means "use the generator default"
	sweepTo    float64 // chirp end frequency; 0 means default
	duty       float64 // pulse duty in [0,1]
	triangular bool
	trendK     float64
	noiseSigma float64 // >=0
}

const (
	defaultAmplitude = 1.0
	defaultDuty      = 0.5
	defaultSeed      = int64(1)
)

func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: defaultAmplitude,
		duty:      defaultDuty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed seeds the noise source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the amplitude A. Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("series: WithAmplitude(A<=0)")
	}

	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base (pulse) or start (chirp) frequency in
// cycles/sample. Panics if f <= 0.
func WithFrequency(f float64) Option {
	if f <= 0 {
		panic("series: WithFrequency(f<=0)")
	}

	return func(c *config) { c.frequency = f }
}

// WithSweepTo sets the chirp end frequency. Panics if f <= 0.
func WithSweepTo(f float64) Option {
	if f <= 0 {
		panic("series: WithSweepTo(f<=0)")
	}

	return func(c *config) { c.sweepTo = f }
}

// WithDuty sets the rectangular pulse duty cycle. Panics outside [0,1].
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic("series: WithDuty(d∉[0,1])")
	}

	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds k*i to sample i. Any real k is accepted.
func WithTrend(k float64) Option {
	return func(c *config) { c.trendK = k }
}

// WithNoise adds Gaussian noise with standard deviation sigma. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithNoise(sigma<0)")
	}

	return func(c *config) { c.noiseSigma = sigma }
}
