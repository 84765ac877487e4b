// SPDX-License-Identifier: MIT
// Package: array
//
// ops.go - element-wise kernels over the flat row-major buffer.
//
// Design:
//   - Every loop runs over Slice() in offset order 0..n-1 (deterministic).
//   - No allocation except the output array of Map/Zip.
//   - Shapes of operands are checked with shape.Equal before any write.

package array

import (
	"fmt"

	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/shape"
	"github.com/katalvlaran/pjplot/storage"
)

const opZip = "Zip"

// Fill sets every element to v.
// Complexity: O(n).
func (a *Array[T]) Fill(v T) {
	buf := a.data.Slice()
	for i := range buf {
		buf[i] = v
	}
}

// Apply replaces each element with f(offset, v) in row-major order.
// Complexity: O(n).
func (a *Array[T]) Apply(f func(off int, v T) T) {
	buf := a.data.Slice()
	for i, v := range buf {
		buf[i] = f(i, v)
	}
}

// Map returns a new array of U with the same extents and storage strategy
// as src, where out[i] = f(src[i]).
func Map[T, U element.Element](src *Array[T], f func(T) U) *Array[U] {
	out := &Array[U]{shape: src.shape, data: newLike[U](src.data)}
	dst := out.data.Slice()
	for i, v := range src.data.Slice() {
		dst[i] = f(v)
	}

	return out
}

// Zip returns out[i] = f(a[i], b[i]).
// Errors: ErrDimensionMismatch when a and b differ in extents.
func Zip[T, U, V element.Element](a *Array[T], b *Array[U], f func(T, U) V) (*Array[V], error) {
	if !shape.Equal(a.shape, b.shape) {
		return nil, fmt.Errorf("%s: %v vs %v: %w", opZip, a.shape, b.shape, ErrDimensionMismatch)
	}
	out := &Array[V]{shape: a.shape, data: newLike[V](a.data)}
	dst, x, y := out.data.Slice(), a.data.Slice(), b.data.Slice()
	for i := range dst {
		dst[i] = f(x[i], y[i])
	}

	return out, nil
}

// CopyFrom copies src into a element by element.
// Errors: ErrDimensionMismatch when the extents differ.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if !shape.Equal(a.shape, src.shape) {
		return fmt.Errorf("CopyFrom: %v vs %v: %w", a.shape, src.shape, ErrDimensionMismatch)
	}
	copy(a.data.Slice(), src.data.Slice())

	return nil
}

// newLike allocates storage of element type U using the same strategy as s.
func newLike[U, T element.Element](s storage.Storage[T]) storage.Storage[U] {
	if s.Kind() == storage.KindFixed {
		return storage.NewFixed[U](s.Len())
	}

	return storage.NewGrowable[U](s.Len())
}
