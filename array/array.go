// SPDX-License-Identifier: MIT
// Package: array
//
// array.go - N-D array: construction, indexed access, bulk views, iteration.
//
// Purpose:
//   - Pair one shape.Shape with one storage.Storage of matching length.
//   - Validate every index at call time for static and dynamic shapes alike.
//   - Keep the row-major offset formula in one place (shape.Offset).

package array

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/shape"
	"github.com/katalvlaran/pjplot/storage"
)

// ---------- error context tags ----------

const (
	ctxNewDynamic = "NewDynamic"
	ctxFromSlice  = "FromSlice"
	ctxLookup     = "Lookup"
	ctxStore      = "Store"
)

// maxLabelRank is the highest rank with its own label; higher ranks are "N-D array".
const maxLabelRank = 9

// arrayErrorf wraps err with the method context and the index tuple.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s%v: %w", method, idx, err)
}

// Array is an N-dimensional row-major array of T.
//   - shape is immutable after construction.
//   - data.Len() == shape.Len() for the array's lifetime.
type Array[T element.Element] struct {
	shape shape.Shape
	data  storage.Storage[T]
}

// NewStatic builds an array whose extents come from the marker type E.
// MAIN DESCRIPTION:
//   - Static-shape constructor; the only path that selects storage.Fixed.
//
// Implementation:
//   - Stage 1: resolve the layout of E via shape.NewStatic.
//   - Stage 2: allocate fixed storage of exactly Len() zero elements.
//
// Inputs:
//   - T: element type from the closed element.Element set.
//   - E: zero-size marker whose Extents() returns constants.
//
// Returns:
//   - *Array[T] with StorageKind() == storage.KindFixed.
//
// Errors:
//   - None returned. An invalid marker panics (programmer error, see shape.NewStatic).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewStatic[T element.Element, E shape.Extents]() *Array[T] {
	s := shape.NewStatic[E]()

	return &Array[T]{shape: s, data: storage.NewFixed[T](s.Len())}
}

// NewDynamic builds an array with run-time extents.
// MAIN DESCRIPTION:
//   - Dynamic-shape constructor; the only path that selects storage.Growable.
//
// Implementation:
//   - Stage 1: validate extents via shape.NewDynamic (rank >= 1, extents > 0, no overflow).
//   - Stage 2: allocate the growable buffer once to Len() zero elements.
//
// Behavior highlights:
//   - Rank and extents are frozen after construction; the buffer is never resized.
//
// Inputs:
//   - extents: one positive extent per dimension.
//
// Returns:
//   - *Array[T] with StorageKind() == storage.KindGrowable.
//
// Errors:
//   - shape.ErrBadShape, shape.ErrOverflow (wrapped with "NewDynamic").
//
// Complexity:
//   - Time O(n), Space O(n).
func NewDynamic[T element.Element](extents ...int) (*Array[T], error) {
	s, err := shape.NewDynamic(extents...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewDynamic, err)
	}

	return &Array[T]{shape: s, data: storage.NewGrowable[T](s.Len())}, nil
}

// FromSlice builds a dynamic array and copies values into it in row-major order.
// Errors: shape errors, or ErrLengthMismatch when len(values) != product(extents).
func FromSlice[T element.Element](values []T, extents ...int) (*Array[T], error) {
	a, err := NewDynamic[T](extents...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromSlice, err)
	}
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%s: %d values for %v: %w", ctxFromSlice, len(values), a.shape, ErrLengthMismatch)
	}
	copy(a.data.Slice(), values)

	return a, nil
}

// Shape returns the shape descriptor.
func (a *Array[T]) Shape() shape.Shape { return a.shape }

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return a.shape.Rank() }

// Extent returns the extent of dimension dim.
func (a *Array[T]) Extent(dim int) int { return a.shape.Extent(dim) }

// Len returns the total element count.
func (a *Array[T]) Len() int { return a.data.Len() }

// StorageKind reports the storage strategy chosen at construction.
func (a *Array[T]) StorageKind() storage.Kind { return a.data.Kind() }

// At returns the element at idx.
// MAIN DESCRIPTION:
//   - Unchecked read path; Lookup is the error-returning twin.
//
// Implementation:
//   - Stage 1: shape.MustOffset validates arity and every index against its extent.
//   - Stage 2: read the flat buffer at the row-major offset.
//
// Behavior highlights:
//   - Validation runs on every call, for static and dynamic shapes alike.
//
// Inputs:
//   - idx: exactly Rank() indices, idx[i] in [0, Extent(i)).
//
// Errors:
//   - Panics with *shape.IndexError wrapping shape.ErrRank or shape.ErrOutOfRange.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *Array[T]) At(idx ...int) T {
	return a.data.At(shape.MustOffset(a.shape, idx...))
}

// Set stores v at idx. Faults like At.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data.Set(shape.MustOffset(a.shape, idx...), v)
}

// Ref returns a pointer to the element at idx, valid for reads and writes
// for the lifetime of the array. Faults like At.
func (a *Array[T]) Ref(idx ...int) *T {
	return a.data.Ref(shape.MustOffset(a.shape, idx...))
}

// Lookup is the checked form of At.
// Errors: shape.ErrRank, shape.ErrOutOfRange (wrapped with the tuple).
func (a *Array[T]) Lookup(idx ...int) (T, error) {
	off, err := a.shape.Offset(idx...)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxLookup, idx, err)
	}

	return a.data.At(off), nil
}

// Store is the checked form of Set.
func (a *Array[T]) Store(v T, idx ...int) error {
	off, err := a.shape.Offset(idx...)
	if err != nil {
		return arrayErrorf(ctxStore, idx, err)
	}
	a.data.Set(off, v)

	return nil
}

// Values returns a read-only view over all elements in row-major order.
func (a *Array[T]) Values() storage.View[T] { return a.data.View() }

// Slice returns the read/write buffer (len == Len()).
func (a *Array[T]) Slice() []T { return a.data.Slice() }

// All yields (linear offset, value) in row-major order. Restartable.
func (a *Array[T]) All() iter.Seq2[int, T] { return a.data.View().All() }

// Do visits every element in row-major order with its index tuple; stops
// early when f returns false. The tuple slice is reused between calls.
func (a *Array[T]) Do(f func(idx []int, v T) bool) {
	idx := make([]int, a.Rank())
	for off, v := range a.All() {
		if !f(idx, v) {
			return
		}
		if off+1 < a.Len() {
			a.advance(idx)
		}
	}
}

// advance increments idx as an odometer over the extents (last dim fastest).
func (a *Array[T]) advance(idx []int) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < a.shape.Extent(d) {
			return
		}
		idx[d] = 0
	}
}

// Clone returns a deep copy with the same shape and storage strategy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{shape: a.shape, data: a.data.Clone()}
}

// Equal reports whether b has the same extents and element values.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !shape.Equal(a.shape, b.shape) {
		return false
	}
	x, y := a.data.Slice(), b.data.Slice()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// Label returns a display label such as "2-D array". Display only.
func (a *Array[T]) Label() string {
	if r := a.Rank(); r <= maxLabelRank {
		return fmt.Sprintf("%d-D array", r)
	}

	return "N-D array"
}

// TypeName returns the registered element name. Display only.
func (a *Array[T]) TypeName() string { return element.Name[T]() }

// String renders a one-line summary plus the flat values, e.g.
// "2-D array of float64 [2 2]: [1 2 3 4]".
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s of %s %s: [", a.Label(), a.TypeName(), a.shape)
	for off, v := range a.All() {
		if off > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')

	return b.String()
}
