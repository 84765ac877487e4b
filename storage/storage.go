// SPDX-License-Identifier: MIT

// Package storage provides the contiguous element buffers behind arrays.
//
// Two strategies implement one Storage contract:
//
//   - Fixed: capacity is the compile-time element count of a static shape.
//     It is allocated once and never grows.
//   - Growable: a heap buffer sized once to the runtime element count of a
//     dynamic shape. It is never resized after construction either; the name
//     records where its size came from, not a permission to grow.
//
// The choice is made by the constructor the caller invokes (static or
// dynamic), never by a runtime branch on the shape. Both types share one
// buffer implementation: NewFixed accepts any n, and the "fixed by a static
// shape" guarantee comes from its only caller in this module, array.NewStatic,
// passing shape.Static[E].Len(). Kind() is what records the strategy. Both strategies zero-fill
// on construction and fault with ErrOutOfRange on a linear index outside
// [0, Len). Allocation failure is fatal (the Go runtime aborts), so neither
// constructor returns an error.
package storage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pjplot/element"
)

// ErrOutOfRange is the payload (wrapped) of a faulting linear access.
var ErrOutOfRange = errors.New("storage: linear index out of range")

// ErrNegativeLen is the payload (wrapped) of a constructor called with n < 0.
var ErrNegativeLen = errors.New("storage: negative length")

// Kind names the strategy behind a Storage.
type Kind uint8

const (
	// KindFixed is capacity fixed by a static shape.
	KindFixed Kind = iota
	// KindGrowable is a once-allocated heap buffer for a dynamic shape.
	KindGrowable
)

// String returns "fixed" or "growable".
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindGrowable:
		return "growable"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Storage is a contiguous buffer of exactly Len() elements.
type Storage[T element.Element] interface {
	// Len returns the element count; constant for the lifetime of the storage.
	Len() int

	// At returns element i. Faults if i is outside [0, Len()).
	At(i int) T

	// Set stores v at i. Faults if i is outside [0, Len()).
	Set(i int, v T)

	// Ref returns a pointer to element i. Faults if i is outside [0, Len()).
	Ref(i int) *T

	// Slice returns the whole buffer for in-place bulk work.
	// Its length equals Len(); appending to it does not grow the storage.
	Slice() []T

	// View returns a read-only view over the whole buffer.
	View() View[T]

	// Kind reports the strategy.
	Kind() Kind

	// Clone returns an independent deep copy of the same strategy.
	Clone() Storage[T]
}

// buffer is the contiguous core shared by both strategies.
type buffer[T element.Element] struct {
	data []T
}

func newBuffer[T element.Element](ctor string, n int) buffer[T] {
	if n < 0 {
		panic(fmt.Errorf("%s(%d): %w", ctor, n, ErrNegativeLen))
	}

	return buffer[T]{data: make([]T, n)}
}

func (b *buffer[T]) check(i int) {
	if i < 0 || i >= len(b.data) {
		panic(fmt.Errorf("index %d, len %d: %w", i, len(b.data), ErrOutOfRange))
	}
}

// Len returns the element count.
func (b *buffer[T]) Len() int { return len(b.data) }

// At returns element i.
func (b *buffer[T]) At(i int) T {
	b.check(i)

	return b.data[i]
}

// Set stores v at i.
func (b *buffer[T]) Set(i int, v T) {
	b.check(i)
	b.data[i] = v
}

// Ref returns &data[i].
func (b *buffer[T]) Ref(i int) *T {
	b.check(i)

	return &b.data[i]
}

// Slice returns the buffer with its capacity clipped to its length, so an
// append by the caller reallocates instead of writing past Len.
func (b *buffer[T]) Slice() []T { return b.data[:len(b.data):len(b.data)] }

// View returns a read-only view.
func (b *buffer[T]) View() View[T] { return View[T]{data: b.data} }

func (b *buffer[T]) cloneData() []T {
	cp := make([]T, len(b.data))
	copy(cp, b.data)

	return cp
}

// Fixed is storage whose capacity is baked in by a static shape.
type Fixed[T element.Element] struct {
	buffer[T]
}

var _ Storage[float64] = (*Fixed[float64])(nil)

// NewFixed allocates n zeroed elements. Panics on n < 0.
// n is expected to be the element count of a static shape; the type does not
// check where n came from.
func NewFixed[T element.Element](n int) *Fixed[T] {
	return &Fixed[T]{buffer: newBuffer[T]("NewFixed", n)}
}

// Cap returns the fixed capacity; always equal to Len.
func (f *Fixed[T]) Cap() int { return len(f.data) }

// Kind reports KindFixed.
func (f *Fixed[T]) Kind() Kind { return KindFixed }

// Clone returns a deep copy.
func (f *Fixed[T]) Clone() Storage[T] {
	return &Fixed[T]{buffer: buffer[T]{data: f.cloneData()}}
}

// Growable is a heap buffer allocated once to a runtime element count.
type Growable[T element.Element] struct {
	buffer[T]
}

var _ Storage[float64] = (*Growable[float64])(nil)

// NewGrowable allocates n zeroed elements. Panics on n < 0.
func NewGrowable[T element.Element](n int) *Growable[T] {
	return &Growable[T]{buffer: newBuffer[T]("NewGrowable", n)}
}

// Kind reports KindGrowable.
func (g *Growable[T]) Kind() Kind { return KindGrowable }

// Clone returns a deep copy.
func (g *Growable[T]) Clone() Storage[T] {
	return &Growable[T]{buffer: buffer[T]{data: g.cloneData()}}
}
