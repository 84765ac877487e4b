// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/pjplot/array"
	"github.com/katalvlaran/pjplot/element"
	"tinygo.org/x/drivers"
)

// Canvas adapts a pixel matrix to drivers.Displayer, so anything that draws
// on a display (charts here, tinyfont elsewhere) can draw into an array.
// x is the column, y is the row. Writes outside the matrix are clipped.
type Canvas struct {
	m *array.Matrix[element.Pixel]
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas wraps m without copying.
// Errors: ErrNilTarget, ErrCanvasTooLarge.
func NewCanvas(m *array.Matrix[element.Pixel]) (*Canvas, error) {
	if m == nil {
		return nil, fmt.Errorf("NewCanvas: %w", ErrNilTarget)
	}
	if m.Rows() > math.MaxInt16 || m.Cols() > math.MaxInt16 {
		return nil, fmt.Errorf("NewCanvas: %dx%d: %w", m.Rows(), m.Cols(), ErrCanvasTooLarge)
	}

	return &Canvas{m: m}, nil
}

// Matrix returns the backing matrix.
func (c *Canvas) Matrix() *array.Matrix[element.Pixel] { return c.m }

// Size returns (width, height).
func (c *Canvas) Size() (x, y int16) {
	return int16(c.m.Cols()), int16(c.m.Rows())
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.m.Cols() || iy < 0 || iy >= c.m.Rows() {
		return
	}
	c.m.Set(iy, ix, element.PixelOf(col))
}

// Display is a no-op; the matrix is the frame.
func (c *Canvas) Display() error { return nil }

// FillRectangle fills the clipped rectangle with col.
func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	x0 := clampInt(int(x), 0, c.m.Cols())
	y0 := clampInt(int(y), 0, c.m.Rows())
	x1 := clampInt(int(x)+int(width), 0, c.m.Cols())
	y1 := clampInt(int(y)+int(height), 0, c.m.Rows())
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	p := element.PixelOf(col)
	for py := y0; py < y1; py++ {
		row := c.m.Row(py)
		for px := x0; px < x1; px++ {
			row[px] = p
		}
	}

	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
