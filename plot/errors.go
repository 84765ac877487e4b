// SPDX-License-Identifier: MIT
// Package plot: sentinel error set.
// Every message is prefixed with "plot: ". Context is added at the call site
// with fmt.Errorf("Ctx: %w", ErrX); callers match with errors.Is.

package plot

import "errors"

var (
	// ErrInvalidColour is returned by appearance setters given a value
	// outside the colour enumeration. The options are left unchanged.
	ErrInvalidColour = errors.New("plot: colour outside enumeration")

	// ErrShortData indicates fewer samples than numSeries*seriesLength.
	ErrShortData = errors.New("plot: not enough samples for params")

	// ErrCanvasTooLarge indicates an extent beyond the int16 display coordinate space.
	ErrCanvasTooLarge = errors.New("plot: canvas extent exceeds int16")

	// ErrNilTarget indicates a nil factory or destination matrix.
	ErrNilTarget = errors.New("plot: nil target")
)
