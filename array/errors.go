// SPDX-License-Identifier: MIT
// Package array: sentinel errors.
//
// Index and shape violations surface as the shape package sentinels
// (shape.ErrRank, shape.ErrOutOfRange, shape.ErrBadShape); the ones below
// are specific to array-level operations. Every message is prefixed with
// "array: " for grep-ability.

package array

import "errors"

var (
	// ErrLengthMismatch indicates a value slice whose length differs from the
	// element count of the requested shape.
	ErrLengthMismatch = errors.New("array: length does not match shape")

	// ErrNotMatrix indicates a rank other than 2 where a Matrix was required.
	ErrNotMatrix = errors.New("array: rank is not 2")

	// ErrDimensionMismatch indicates operands with different extents.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrEmpty indicates a statistic requested over zero elements.
	ErrEmpty = errors.New("array: no elements")
)
