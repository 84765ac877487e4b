// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Extents is implemented by zero-size marker types that fix a static shape.
// The method must return the same constant list on every call:
//
//	type Canvas struct{}
//
//	func (Canvas) Extents() []int { return []int{600, 600} }
type Extents interface {
	Extents() []int
}

// Static is a shape whose extents are determined by the marker type E.
type Static[E Extents] struct {
	layout
}

var _ Shape = Static[staticProbe]{}

// NewStatic builds the descriptor for E.
// Panics if E describes an invalid shape: the marker is source code, so a bad
// extent list is a programmer error rather than a runtime condition.
func NewStatic[E Extents]() Static[E] {
	var marker E
	l, err := newLayout(marker.Extents())
	if err != nil {
		panic(fmt.Errorf("NewStatic[%T]: %w", marker, err))
	}

	return Static[E]{layout: l}
}

// Static reports true.
func (Static[E]) Static() bool { return true }

// staticProbe only exists for the interface assertion above.
type staticProbe struct{}

func (staticProbe) Extents() []int { return []int{1} }
