// SPDX-License-Identifier: MIT

// Package sparse implements a coordinate-list (COO) matrix of float64 values
// for matrices in which most entries are zero.
//
// What & Why:
//
//	Only explicitly stored (row, col, value) triples are kept; every other
//	coordinate reads as zero. Memory is O(nnz) instead of O(rows*cols), and the
//	product of two matrices is computed without ever building the dense form.
//
// Coordinates:
//
//	Rows and columns are 1-based. Rows()/Cols() are high-water marks: the
//	largest row/column index ever passed to Set. They only grow.
//
// Lazy invariants (dirty bits):
//
//	Set appends in O(1) when coordinates arrive in ascending order and only
//	flags the list as unsorted (or as holding zeros) otherwise. The list is
//	sorted on demand before a lookup, and zeros are purged on demand before a
//	product. The entry at (Rows(), Cols()) always survives zero cleanup so the
//	declared dimensions stay witnessed by a stored element.
//
// Complexity:
//
//	Set/At: O(log nnz) on a sorted list, plus a one-off O(nnz log nnz) sort
//	after out-of-order inserts. Mul: bounded by
//	distinct(left rows) × distinct(right cols) × (row run + column run).
//
// Concurrency:
//
//	A Matrix is not safe for concurrent use. Mul mutates the internal state of
//	BOTH operands (it forces them clean and sorted), so callers must hold
//	exclusive access to both. Mul(a, a) is allowed.
//
// Interop:
//
//	ToDense/FromDense/FormatDense bridge to gonum.org/v1/gonum/mat for
//	debugging and for cross-checking results against a dense kernel.
package sparse
