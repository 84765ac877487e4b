// SPDX-License-Identifier: MIT
// Package: array
//
// matrix.go - 2-D specialisation with named row/column accessors.
//
// Matrix embeds Array and shadows At/Set/Ref with two-argument forms, so the
// index count is checked by the compiler. Row-major offset: r*cols + c.

package array

import (
	"fmt"

	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/shape"
)

const matrixRank = 2

// Matrix is a rank-2 Array with row/column accessors.
type Matrix[T element.Element] struct {
	Array[T]
}

// NewStaticMatrix builds a matrix whose extents come from E (must be rank 2),
// backed by fixed-capacity storage.
// Panics if E is not a valid rank-2 shape.
func NewStaticMatrix[T element.Element, E shape.Extents]() *Matrix[T] {
	a := NewStatic[T, E]()
	if a.Rank() != matrixRank {
		var marker E
		panic(fmt.Errorf("NewStaticMatrix[%T]: rank %d: %w", marker, a.Rank(), ErrNotMatrix))
	}

	return &Matrix[T]{Array: *a}
}

// NewMatrix builds a rows×cols matrix backed by a growable buffer.
// Errors: shape.ErrBadShape, shape.ErrOverflow.
func NewMatrix[T element.Element](rows, cols int) (*Matrix[T], error) {
	a, err := NewDynamic[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}

	return &Matrix[T]{Array: *a}, nil
}

// AsMatrix views a rank-2 array as a Matrix sharing the same storage.
// Errors: ErrNotMatrix.
func AsMatrix[T element.Element](a *Array[T]) (*Matrix[T], error) {
	if a.Rank() != matrixRank {
		return nil, fmt.Errorf("AsMatrix: rank %d: %w", a.Rank(), ErrNotMatrix)
	}

	return &Matrix[T]{Array: *a}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.shape.Extent(0) }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.shape.Extent(1) }

// At returns element (row, col). Faults if either index is out of range.
func (m *Matrix[T]) At(row, col int) T { return m.Array.At(row, col) }

// Set stores v at (row, col). Faults like At.
func (m *Matrix[T]) Set(row, col int, v T) { m.Array.Set(v, row, col) }

// Ref returns a pointer to element (row, col). Faults like At.
func (m *Matrix[T]) Ref(row, col int) *T { return m.Array.Ref(row, col) }

// Row returns the contiguous read/write slice of row r. Faults if r is out of range.
func (m *Matrix[T]) Row(r int) []T {
	off := shape.MustOffset(m.shape, r, 0)
	cols := m.Cols()

	return m.data.Slice()[off : off+cols : off+cols]
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{Array: *m.Array.Clone()}
}
