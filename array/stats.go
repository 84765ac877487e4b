// SPDX-License-Identifier: MIT
// Package: array
//
// stats.go - reductions over read-only numeric views.
//
// Exposed API:
//   - Sum(v)    -> float64             // Σ v[i]
//   - Mean(v)   -> (float64, error)    // Σ v[i] / n
//   - MinMax(v) -> (lo, hi, error)     // smallest and largest finite element
//
// Determinism:
//   - Fixed 0..n-1 traversal; accumulation in float64 regardless of T.
//   - NaN and ±Inf elements are skipped by MinMax; they propagate through Sum/Mean.

package array

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pjplot/element"
	"github.com/katalvlaran/pjplot/storage"
)

const (
	opMean   = "Mean"
	opMinMax = "MinMax"
)

// Sum returns the float64 sum of all elements (0 for an empty view).
// Complexity: O(n).
func Sum[T element.Numeric](v storage.View[T]) float64 {
	var acc float64
	for x := range v.Values() {
		acc += float64(x)
	}

	return acc
}

// Mean returns the arithmetic mean.
// Errors: ErrEmpty for an empty view.
// Complexity: O(n).
func Mean[T element.Numeric](v storage.View[T]) (float64, error) {
	n := v.Len()
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", opMean, ErrEmpty)
	}

	return Sum(v) / float64(n), nil
}

// MinMax returns the smallest and largest finite elements.
// Errors: ErrEmpty when the view holds no finite element.
// Complexity: O(n).
func MinMax[T element.Numeric](v storage.View[T]) (lo, hi float64, err error) {
	lo, hi = math.Inf(1), math.Inf(-1)
	seen := false
	for x := range v.Values() {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		seen = true
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if !seen {
		return 0, 0, fmt.Errorf("%s: %w", opMinMax, ErrEmpty)
	}

	return lo, hi, nil
}
