// SPDX-License-Identifier: MIT

package sparse

// Test bridge: exposes dirty bits and panic messages to package sparse_test
// without widening the production API.

// IsSorted_TestOnly reports the sorted dirty bit.
func IsSorted_TestOnly(m *Matrix) bool { return m.sorted }

// IsClean_TestOnly reports the clean dirty bit.
func IsClean_TestOnly(m *Matrix) bool { return m.clean }

// Capacity_TestOnly reports the capacity of the entry list.
func Capacity_TestOnly(m *Matrix) int { return cap(m.entries) }

// Panic message exports to avoid magic strings in tests.
const (
	PanicRowOutOfRange_TestOnly    = panicRowOutOfRange
	PanicColOutOfRange_TestOnly    = panicColOutOfRange
	PanicCapacityNegative_TestOnly = panicCapacityNegative
)
