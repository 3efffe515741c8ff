// SPDX-License-Identifier: MIT

// Package sparse - COO storage & lazy invariant maintenance.
//
// Purpose:
//   - Keep entries in an append-friendly slice; sort only when a lookup needs it.
//   - Track two dirty bits (sorted, clean) and repair them on demand.
//   - Preserve the dimension-corner entry (rows, cols) across zero cleanup.
//
// Complexity quicksheet:
//   - New: O(capacity); insertNew: O(1) amortized; ensureSorted: O(n log n) when dirty;
//     CleanZeros: O(n); NumberOfPoints/Dims: O(1).
package sparse

import "slices"

// Matrix is a sparse matrix stored as a coordinate list.
//   - entries holds the stored triples; sorted by Compare while sorted==true.
//   - rows, cols are high-water marks of every index ever inserted.
//   - sorted == false means entries may be out of (row, col) order.
//   - clean == false means entries may hold zero values outside the corner.
//
// The zero value is NOT ready for use (flags would read dirty); use New.
type Matrix struct {
	entries []Entry
	rows    int
	cols    int
	sorted  bool
	clean   bool
}

// New returns an empty matrix (0×0, no points, both invariants satisfied).
// Complexity: O(capacity) for the optional pre-sized buffer.
func New(opts ...Option) *Matrix {
	o := gatherOptions(opts...)

	return &Matrix{
		entries: make([]Entry, 0, o.capacity),
		sorted:  true,
		clean:   true,
	}
}

// Rows returns the largest row index ever inserted (0 for a new matrix).
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the largest column index ever inserted (0 for a new matrix).
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims packs Rows() and Cols() into a single call.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NumberOfPoints returns the number of stored entries, zeros included until
// they are cleaned. Every distinct coordinate ever set counts once.
// Complexity: O(1).
func (m *Matrix) NumberOfPoints() int { return len(m.entries) }

// insertNew appends a new entry and downgrades the dirty bits.
// MAIN DESCRIPTION:
//   - Unconditional append; caller has already established that no entry
//     exists at (row, col).
//
// Implementation:
//   - Stage 1: look at the LAST entry only. If (row, col) sorts before it the
//     list becomes unsorted; otherwise a zero value marks the list unclean.
//   - Stage 2: append and raise the rows/cols high-water marks.
//
// Behavior highlights:
//   - Approximate detection: an out-of-order zero flips sorted but not clean,
//     and the first insert into an empty matrix flips nothing.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (m *Matrix) insertNew(row, col int, value float64) {
	e := Entry{Row: row, Col: col, Value: value}
	if n := len(m.entries); n > 0 {
		if Compare(e, m.entries[n-1]) < 0 {
			m.sorted = false
		} else if value == 0 {
			m.clean = false
		}
	}
	m.entries = append(m.entries, e)
	m.rows = max(m.rows, row)
	m.cols = max(m.cols, col)
}

// ensureSorted sorts the entries by Compare when the sorted bit is down.
// Idempotent. Coordinates are unique, so stability does not matter.
func (m *Matrix) ensureSorted() {
	if m.sorted {
		return
	}
	slices.SortFunc(m.entries, Compare)
	m.sorted = true
}

// ensureClean purges zeros when the clean bit is down. Idempotent.
func (m *Matrix) ensureClean() {
	if m.clean {
		return
	}
	m.CleanZeros()
	m.clean = true
}

// EnsureClean purges zero-valued entries if any insert may have stored one.
// It is a no-op while the clean bit is up; overwriting an existing value with
// zero through Set does NOT lower the bit (use CleanZeros for a forced pass).
func (m *Matrix) EnsureClean() { m.ensureClean() }

// CleanZeros rebuilds the entry list without zero values.
// MAIN DESCRIPTION:
//   - Unconditional O(n) filter, regardless of the clean bit.
//
// Implementation:
//   - Stage 1: allocate a fresh list (entries stay exclusively owned).
//   - Stage 2: keep e.Value != 0 OR e is the dimension corner (rows, cols).
//
// Behavior highlights:
//   - Relative order is preserved, so the sorted bit stays valid.
//   - rows/cols are untouched: they remain high-water marks.
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Matrix) CleanZeros() {
	corner := at(m.rows, m.cols)
	kept := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.Value != 0 || e.Equal(corner) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// Clone returns a deep copy with identical entries, dimensions and dirty bits.
// Complexity: O(n).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		entries: slices.Clone(m.entries),
		rows:    m.rows,
		cols:    m.cols,
		sorted:  m.sorted,
		clean:   m.clean,
	}
}
