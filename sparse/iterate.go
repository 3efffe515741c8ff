// SPDX-License-Identifier: MIT

package sparse

import "iter"

// All returns a lazy sequence over the stored entries in (row, col) order.
//
// Each traversal first forces the sorted invariant, so the sequence can be
// ranged over any number of times and always reflects the current contents.
// Zeros that have not been cleaned are yielded too. The matrix must not be
// mutated while a traversal is in progress.
//
//	for e := range m.All() {
//		fmt.Println(e.Row, e.Col, e.Value)
//	}
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		m.ensureSorted()
		for _, e := range m.entries {
			if !yield(e) {
				return
			}
		}
	}
}
