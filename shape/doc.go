// SPDX-License-Identifier: MIT

// Package shape describes the dimensionality and extents of an array.
//
// A Shape has a fixed rank, one extent per dimension, a total element count
// (the product of the extents) and the row-major mapping from an index tuple
// to a linear offset:
//
//	offset = Σ idx[i] * stride[i],  stride[rank-1] = 1,  stride[i] = stride[i+1] * extent[i+1]
//
// Two forms implement the same contract:
//
//   - Static[E]: the extents belong to the type. E is a zero-size marker whose
//     Extents method returns constants, so two arrays of Static[Canvas] always
//     agree on their extents.
//   - Dynamic: the extents are supplied once at construction and frozen.
//
// Every index is validated on every call, for both forms. Offset reports a
// violation as an error; MustOffset panics with *IndexError and is what the
// array package uses for its faulting accessors.
//
// Complexity: Offset and MustOffset run in O(rank); Len, Rank and Extent are O(1).
package shape
