// SPDX-License-Identifier: MIT
// Package: plot
//
// chart.go - chart kinds drawing series onto a Canvas.
//
// Coordinate mapping (shared by every kind):
//   - sample i of a series of length L sits at column i*(W-1)/(L-1)
//     (column 0 when L == 1);
//   - value v sits at row (H-1) - round((v-lo)/(hi-lo) * (H-1));
//     when hi == lo every value sits on the middle row;
//   - non-finite samples (NaN, ±Inf) are not drawn.
//
// All kinds draw in the text colour and leave the background untouched.

package plot

import (
	"image/color"
	"math"
)

// Chart draws series onto a canvas already filled with the background colour.
// lo and hi bound the finite sample values across all series.
type Chart interface {
	Name() string
	Draw(c *Canvas, series [][]float64, lo, hi float64, a AppearanceOptions)
}

// Line joins consecutive samples of each series with straight segments.
type Line struct{}

// Bar draws one vertical bar per sample, series side by side within a slot.
type Bar struct{}

// Scatter marks each sample with a square of side 2*Radius+1, clipped to the canvas.
type Scatter struct {
	Radius int
}

var (
	_ Chart = Line{}
	_ Chart = Bar{}
	_ Chart = Scatter{}
)

// Name returns "line".
func (Line) Name() string { return "line" }

// Draw implements Chart.
func (Line) Draw(c *Canvas, series [][]float64, lo, hi float64, a AppearanceOptions) {
	ink := a.Text().Pixel().ToRGBA()
	w, h := c.m.Cols(), c.m.Rows()
	for _, s := range series {
		havePrev := false
		var px, py int
		for i, v := range s {
			if !finite(v) {
				havePrev = false
				continue
			}
			x, y := column(i, len(s), w), row(v, lo, hi, h)
			if havePrev {
				segment(c, px, py, x, y, ink)
			} else {
				c.SetPixel(int16(x), int16(y), ink)
			}
			px, py, havePrev = x, y, true
		}
	}
}

// Name returns "bar".
func (Bar) Name() string { return "bar" }

// Draw implements Chart. Bars rise from the bottom row.
func (Bar) Draw(c *Canvas, series [][]float64, lo, hi float64, a AppearanceOptions) {
	ink := a.Text().Pixel().ToRGBA()
	w, h := c.m.Cols(), c.m.Rows()
	if len(series) == 0 {
		return
	}
	length := len(series[0])
	slot := max(1, w/max(1, length))
	bw := max(1, slot/len(series))
	for si, s := range series {
		for i, v := range s {
			if !finite(v) {
				continue
			}
			x := i*slot + si*bw
			y := row(v, lo, hi, h)
			_ = c.FillRectangle(int16(x), int16(y), int16(bw), int16(h-y), ink)
		}
	}
}

// Name returns "scatter".
func (Scatter) Name() string { return "scatter" }

// Draw implements Chart.
func (s Scatter) Draw(c *Canvas, series [][]float64, lo, hi float64, a AppearanceOptions) {
	ink := a.Text().Pixel().ToRGBA()
	w, h := c.m.Cols(), c.m.Rows()
	r := min(max(0, s.Radius), max(w, h))
	for _, ser := range series {
		for i, v := range ser {
			if !finite(v) {
				continue
			}
			x, y := column(i, len(ser), w), row(v, lo, hi, h)
			x0, y0 := max(0, x-r), max(0, y-r)
			x1, y1 := min(w, x+r+1), min(h, y+r+1)
			_ = c.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), ink)
		}
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func column(i, n, width int) int {
	if n <= 1 {
		return 0
	}

	return i * (width - 1) / (n - 1)
}

func row(v, lo, hi float64, height int) int {
	if hi <= lo {
		return (height - 1) / 2
	}
	t := (v - lo) / (hi - lo)

	return (height - 1) - int(math.Round(t*float64(height-1)))
}

// segment draws a Bresenham line from (x0,y0) to (x1,y1) inclusive.
func segment(c *Canvas, x0, y0, x1, y1 int, ink color.RGBA) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.SetPixel(int16(x0), int16(y0), ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
