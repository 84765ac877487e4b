// SPDX-License-Identifier: MIT
// Package: shape
//
// errors.go - sentinel errors and the index fault payload.
//
// Error policy:
//   - Constructors (NewDynamic) return sentinels wrapped with context.
//   - Offset returns sentinels; MustOffset panics with *IndexError.
//   - Callers match with errors.Is, never on message text.

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a rank of zero or any extent <= 0.
	ErrBadShape = errors.New("shape: invalid shape")

	// ErrOverflow is returned when the product of extents does not fit in int.
	ErrOverflow = errors.New("shape: element count overflows int")

	// ErrRank indicates an index tuple whose length differs from the rank.
	ErrRank = errors.New("shape: index count does not match rank")

	// ErrOutOfRange indicates an index outside [0, extent).
	ErrOutOfRange = errors.New("shape: index out of range")
)

// IndexError is the panic payload of every faulting indexed access.
// It keeps the offending tuple and the extents for diagnostics.
type IndexError struct {
	Index   []int // index tuple as supplied
	Extents []int // extents of the shape at fault time
	Err     error // ErrRank or ErrOutOfRange
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %v for extents %v: %v", e.Index, e.Extents, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *IndexError) Unwrap() error { return e.Err }
