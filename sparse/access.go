// SPDX-License-Identifier: MIT

package sparse

import "slices"

// find forces the sorted invariant and binary-searches (row, col).
// Returns the position and whether an entry is stored there.
func (m *Matrix) find(row, col int) (int, bool) {
	m.ensureSorted()

	return slices.BinarySearchFunc(m.entries, at(row, col), Compare)
}

// Set stores value at (row, col), overwriting an existing entry in place or
// appending a new one.
//
// Overwriting with zero keeps the entry and does NOT mark the matrix unclean;
// only CleanZeros removes it. Set never fails; row or col below 1 is a
// programmer error and panics.
//
// Complexity: O(log n) plus a one-off sort if earlier inserts were out of order.
func (m *Matrix) Set(row, col int, value float64) {
	validateIndex(row, col)
	if i, ok := m.find(row, col); ok {
		m.entries[i].Value = value // in place; clean bit untouched

		return
	}
	m.insertNew(row, col, value)
}

// At returns the value stored at (row, col), or 0 when nothing is stored
// there. Coordinates beyond Rows()/Cols() are valid and read as 0.
//
// At may sort the entry list as a side effect, hence the pointer receiver.
// Complexity: O(log n) plus a one-off sort if the list is dirty.
func (m *Matrix) At(row, col int) float64 {
	validateIndex(row, col)
	if i, ok := m.find(row, col); ok {
		return m.entries[i].Value
	}

	return 0
}
