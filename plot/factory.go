// SPDX-License-Identifier: MIT
// Package: plot
//
// factory.go - the Plot façade.
//
// Contract:
//   - Plot allocates a rows×cols pixel matrix and fills it through PlotInto.
//   - PlotInto resets dst to the zero pixel, paints the background over the
//     whole matrix, then lets the configured Chart draw the series in the
//     text colour. Every element of dst is written.
//   - The first params.Samples() elements of data are used; extra samples
//     are ignored.

package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pjplot/array"
	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/storage"
)

const (
	ctxPlot     = "Plot"
	ctxPlotInto = "PlotInto"
)

const (
	panicNilChart          = "plot: WithChart: chart must be non-nil"
	panicInvalidAppearance = "plot: WithAppearance: colours outside enumeration"
)

// Option configures a Factory.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Factory)

// WithAppearance sets the appearance options.
func WithAppearance(a AppearanceOptions) Option {
	if !a.valid() {
		panic(panicInvalidAppearance)
	}

	return func(f *Factory) { f.appearance = a }
}

// WithChart selects the chart kind (default Line{}).
func WithChart(c Chart) Option {
	if c == nil {
		panic(panicNilChart)
	}

	return func(f *Factory) { f.chart = c }
}

// Factory holds the appearance options and chart kind used by Plot.
type Factory struct {
	appearance AppearanceOptions
	chart      Chart
}

// NewFactory returns a factory with DefaultAppearance and a Line chart,
// then applies opts in order.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{appearance: DefaultAppearance(), chart: Line{}}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Appearance returns the factory's options for in-place adjustment
// through the validating setters.
func (f *Factory) Appearance() *AppearanceOptions { return &f.appearance }

// Chart returns the configured chart kind.
func (f *Factory) Chart() Chart { return f.chart }

// Plot renders data into a new rows×cols matrix.
// Errors: shape.ErrBadShape, ErrCanvasTooLarge, ErrShortData, ErrNilTarget.
func Plot[T element.Numeric](f *Factory, data storage.View[T], params Params, rows, cols int) (*array.Matrix[element.Pixel], error) {
	if rows > math.MaxInt16 || cols > math.MaxInt16 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxPlot, rows, cols, ErrCanvasTooLarge)
	}
	dst, err := array.NewMatrix[element.Pixel](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxPlot, err)
	}
	if err = PlotInto(f, data, params, dst); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxPlot, err)
	}

	return dst, nil
}

// PlotInto renders data into dst, which may be static or dynamic.
// On error dst is not modified.
func PlotInto[T element.Numeric](f *Factory, data storage.View[T], params Params, dst *array.Matrix[element.Pixel]) error {
	if f == nil {
		return fmt.Errorf("%s: factory: %w", ctxPlotInto, ErrNilTarget)
	}
	c, err := NewCanvas(dst)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxPlotInto, err)
	}
	n := params.Samples()
	if n < 1 || data.Len() < n {
		return fmt.Errorf("%s: %d samples for %d×%d: %w",
			ctxPlotInto, data.Len(), params.NumSeries(), params.SeriesLength(), ErrShortData)
	}

	used := data.Sub(0, n)
	lo, hi, err := array.MinMax(used)
	if errors.Is(err, array.ErrEmpty) {
		lo, hi = 0, 0
	}

	series := make([][]float64, params.NumSeries())
	for s := range series {
		part := used.Sub(s*params.SeriesLength(), (s+1)*params.SeriesLength())
		series[s] = make([]float64, 0, part.Len())
		for v := range part.Values() {
			series[s] = append(series[s], float64(v))
		}
	}

	var zero element.Pixel
	dst.Fill(zero)
	w, h := c.Size()
	_ = c.FillRectangle(0, 0, w, h, f.appearance.Background().Pixel().ToRGBA())
	f.chart.Draw(c, series, lo, hi, f.appearance)

	return nil
}
