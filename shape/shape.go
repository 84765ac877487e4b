// SPDX-License-Identifier: MIT
// Package: shape
//
// shape.go - the Shape contract and the shared row-major layout.
//
// Purpose:
//   - One generic contract for every rank (no per-rank structs).
//   - A single layout type computes strides, element count and offsets;
//     Static[E] and Dynamic both embed it.
//
// Determinism:
//   - Strides are derived once at construction; no allocation on Offset.

package shape

import (
	"fmt"
	"math"
	"strings"
)

// Shape is the contract shared by static and dynamic shape descriptors.
type Shape interface {
	// Rank returns the number of dimensions (>= 1).
	Rank() int

	// Extent returns the extent of dimension dim.
	// Panics with ErrRank if dim is not in [0, Rank()).
	Extent(dim int) int

	// Extents returns a copy of all extents in dimension order.
	Extents() []int

	// Len returns the total element count (product of extents).
	Len() int

	// Strides returns a copy of the row-major strides.
	Strides() []int

	// Offset validates idx and returns its row-major linear offset.
	// Errors: ErrRank (len(idx) != Rank()), ErrOutOfRange (idx[i] outside [0, extent)).
	Offset(idx ...int) (int, error)

	// Static reports whether the extents are fixed by the type.
	Static() bool

	// String renders the extents, e.g. "[600 600]".
	String() string
}

// layout is the row-major core embedded by Static and Dynamic.
// Fields are never mutated after construction.
type layout struct {
	dims    []int // extents, len == rank
	strides []int // row-major strides, len == rank
	n       int   // product of dims
}

// newLayout validates extents and derives strides and the element count.
// Stage 1: rank >= 1, every extent > 0.
// Stage 2: strides right-to-left with overflow guard.
func newLayout(extents []int) (layout, error) {
	if len(extents) == 0 {
		return layout{}, fmt.Errorf("rank 0: %w", ErrBadShape)
	}
	dims := make([]int, len(extents))
	for i, e := range extents {
		if e <= 0 {
			return layout{}, fmt.Errorf("extent[%d]=%d: %w", i, e, ErrBadShape)
		}
		dims[i] = e
	}

	strides := make([]int, len(dims))
	n := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = n
		if n > math.MaxInt/dims[i] {
			return layout{}, fmt.Errorf("extents %v: %w", dims, ErrOverflow)
		}
		n *= dims[i]
	}

	return layout{dims: dims, strides: strides, n: n}, nil
}

// Rank returns the number of dimensions.
func (l layout) Rank() int { return len(l.dims) }

// Extent returns the extent of dimension dim.
func (l layout) Extent(dim int) int {
	if dim < 0 || dim >= len(l.dims) {
		panic(&IndexError{Index: []int{dim}, Extents: l.Extents(), Err: ErrRank})
	}

	return l.dims[dim]
}

// Extents returns a copy of the extents.
func (l layout) Extents() []int {
	out := make([]int, len(l.dims))
	copy(out, l.dims)

	return out
}

// Len returns the element count.
func (l layout) Len() int { return l.n }

// Strides returns a copy of the strides.
func (l layout) Strides() []int {
	out := make([]int, len(l.strides))
	copy(out, l.strides)

	return out
}

// Offset validates every index and returns Σ idx[i]*stride[i].
func (l layout) Offset(idx ...int) (int, error) {
	if len(idx) != len(l.dims) {
		return 0, ErrRank
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= l.dims[i] {
			return 0, ErrOutOfRange
		}
		off += x * l.strides[i]
	}

	return off, nil
}

// String renders the extents.
func (l layout) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range l.dims {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", d)
	}
	b.WriteByte(']')

	return b.String()
}

// MustOffset is the faulting form of s.Offset.
// MAIN DESCRIPTION:
//   - Single fault site for indexed access on every array and matrix.
//
// Implementation:
//   - Stage 1: delegate to s.Offset (arity check, then per-dimension bounds).
//   - Stage 2: on error, copy the tuple and panic with *IndexError.
//
// Inputs:
//   - s: any Shape, static or dynamic.
//   - idx: the index tuple as supplied by the caller.
//
// Returns:
//   - int: Σ idx[i]*stride[i].
//
// Errors:
//   - Panics with *IndexError; errors.Is matches ErrRank or ErrOutOfRange after recover.
//
// Complexity:
//   - Time O(rank), Space O(1) on success.
func MustOffset(s Shape, idx ...int) int {
	off, err := s.Offset(idx...)
	if err != nil {
		tuple := make([]int, len(idx))
		copy(tuple, idx)
		panic(&IndexError{Index: tuple, Extents: s.Extents(), Err: err})
	}

	return off
}

// Equal reports whether a and b have the same extents.
// Static-ness is ignored: Static[E] and a Dynamic with the same extents are equal.
func Equal(a, b Shape) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	for i := 0; i < a.Rank(); i++ {
		if a.Extent(i) != b.Extent(i) {
			return false
		}
	}

	return true
}
