// SPDX-License-Identifier: MIT

package plot

import (
	"math"

	"github.com/katalvlaran/pjplot/result"
)

// Params describes how a flat sample buffer splits into series:
// series s occupies samples [s*SeriesLength, (s+1)*SeriesLength).
type Params struct {
	numSeries    int
	seriesLength int
}

// NewParams validates numSeries >= 1, seriesLength >= 1 and that their
// product fits in int.
func NewParams(numSeries, seriesLength int) result.Result[Params] {
	switch {
	case numSeries < 1:
		return result.Failf[Params]("params: numSeries=%d must be >= 1", numSeries)
	case seriesLength < 1:
		return result.Failf[Params]("params: seriesLength=%d must be >= 1", seriesLength)
	case numSeries > math.MaxInt/seriesLength:
		return result.Failf[Params]("params: %d series of %d samples overflows int", numSeries, seriesLength)
	}

	return result.Ok(Params{numSeries: numSeries, seriesLength: seriesLength})
}

// NumSeries returns the series count.
func (p Params) NumSeries() int { return p.numSeries }

// SeriesLength returns the samples per series.
func (p Params) SeriesLength() int { return p.seriesLength }

// Samples returns numSeries*seriesLength.
func (p Params) Samples() int { return p.numSeries * p.seriesLength }
