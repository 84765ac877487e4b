// SPDX-License-Identifier: MIT

// Package array provides a dimension-aware N-D array and a 2-D Matrix over
// the closed element set of package element.
//
// What & Why:
//
//	An Array owns exactly one shape descriptor and one storage buffer. The
//	storage strategy follows the constructor: NewStatic (extents fixed by a
//	marker type) uses fixed-capacity storage, NewDynamic (extents supplied at
//	run time) uses a once-allocated growable buffer. Storage length equals
//	the shape's element count for the array's whole lifetime.
//
// Indexing:
//
//	At/Set/Ref take exactly Rank() indices and fault (panic with
//	*shape.IndexError) on a wrong count or any index outside its extent.
//	Lookup/Store are the checked twins that return the same sentinel as an
//	error. Matrix.At(r, c) fixes the arity at compile time.
//
// Bulk access:
//
//	Values() is a read-only view over all elements, Slice() the read/write
//	buffer; both span exactly Len() elements in row-major order. All() is a
//	restartable row-major iterator.
//
// Copying:
//
//	Go copies a *Array by pointer. Clone is the deep copy; an Array is never
//	shared implicitly by the package.
//
// Concurrency:
//
//	No internal locking. Concurrent use of one array must be serialised by
//	the caller.
//
// Complexity:
//
//	At/Set/Ref/Lookup/Store O(rank); Len/Rank O(1); Clone, Fill, Apply,
//	iteration and statistics O(n).
package array
