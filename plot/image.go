// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"github.com/katalvlaran/pjplot/array"
	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/shape"
)

// ToImage copies m into a new NRGBA image (width = Cols, height = Rows).
func ToImage(m *array.Matrix[element.Pixel]) *image.NRGBA {
	img := imaging.New(m.Cols(), m.Rows(), color.NRGBA{})
	for r := 0; r < m.Rows(); r++ {
		for c, p := range m.Row(r) {
			img.Set(c, r, p)
		}
	}

	return img
}

// FromImage copies any image into a new dynamic pixel matrix.
// Errors: shape.ErrBadShape for an empty image.
func FromImage(img image.Image) (*array.Matrix[element.Pixel], error) {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	m, err := array.NewMatrix[element.Pixel](b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("FromImage: %w", err)
	}
	for r := 0; r < b.Dy(); r++ {
		row := m.Row(r)
		for c := range row {
			row[c] = element.PixelOf(rgba.RGBAAt(b.Min.X+c, b.Min.Y+r))
		}
	}

	return m, nil
}

// Resize returns m resampled to rows×cols with nearest-neighbour filtering.
// Errors: shape.ErrBadShape for non-positive extents.
func Resize(m *array.Matrix[element.Pixel], rows, cols int) (*array.Matrix[element.Pixel], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Resize: %dx%d: %w", rows, cols, shape.ErrBadShape)
	}

	return FromImage(imaging.Resize(ToImage(m), cols, rows, imaging.NearestNeighbor))
}
