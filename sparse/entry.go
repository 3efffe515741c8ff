// SPDX-License-Identifier: MIT

package sparse

import "cmp"

// Entry is a single stored (Row, Col, Value) triple. Coordinates are 1-based.
//
// Ordering and equality look at (Row, Col) only: two entries at the same
// coordinate with different values compare equal. Binary search relies on
// this to answer "is there an entry at this coordinate".
type Entry struct {
	Row   int     // 1-based row index
	Col   int     // 1-based column index
	Value float64 // stored value; may be zero until CleanZeros runs
}

// Compare orders entries lexicographically by (Row, Col).
// Returns -1 if a sorts before b, +1 if after, 0 on the same coordinate.
// Value never takes part in the comparison.
//
// Compare is the single comparator of the package: it drives both sorting
// and binary-search membership, so "found" and "sorted position" agree.
// Complexity: O(1).
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}

// Equal reports whether e and o sit at the same coordinate (value ignored).
func (e Entry) Equal(o Entry) bool { return Compare(e, o) == 0 }

// at builds a probe entry for binary search.
func at(row, col int) Entry { return Entry{Row: row, Col: col} }
