// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Dynamic is a shape whose extents are supplied at construction.
// Rank and extents never change afterwards.
type Dynamic struct {
	layout
}

var _ Shape = Dynamic{}

// NewDynamic validates extents and returns the frozen descriptor.
// Errors: ErrBadShape (no extents, or an extent <= 0), ErrOverflow.
// Complexity: O(rank).
func NewDynamic(extents ...int) (Dynamic, error) {
	l, err := newLayout(extents)
	if err != nil {
		return Dynamic{}, fmt.Errorf("NewDynamic: %w", err)
	}

	return Dynamic{layout: l}, nil
}

// Static reports false.
func (Dynamic) Static() bool { return false }
