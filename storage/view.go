// SPDX-License-Identifier: MIT

package storage

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pjplot/element"
)

// View is a read-only window over contiguous elements.
// It shares memory with its source: writes through the owning Storage are
// visible, but View itself exposes no way to mutate.
// The zero View is empty.
type View[T element.Element] struct {
	data []T
}

// ViewOf wraps s without copying.
func ViewOf[T element.Element](s []T) View[T] { return View[T]{data: s} }

// Len returns the element count.
func (v View[T]) Len() int { return len(v.data) }

// At returns element i. Faults if i is outside [0, Len()).
func (v View[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Errorf("View.At: index %d, len %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i]
}

// Sub returns the view over [lo, hi). Faults on an invalid range.
func (v View[T]) Sub(lo, hi int) View[T] {
	if lo < 0 || hi < lo || hi > len(v.data) {
		panic(fmt.Errorf("View.Sub(%d,%d), len %d: %w", lo, hi, len(v.data), ErrOutOfRange))
	}

	return View[T]{data: v.data[lo:hi:hi]}
}

// CopyTo copies min(Len, len(dst)) elements into dst and returns the count.
func (v View[T]) CopyTo(dst []T) int { return copy(dst, v.data) }

// Clone returns a fresh slice holding a copy of the viewed elements.
func (v View[T]) Clone() []T {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return cp
}

// All yields (offset, value) pairs in storage order.
// The sequence is restartable: each range over it starts at offset 0.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements in storage order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}
