// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for operand checks used by Mul and dense export.
//   - Return tagged sentinel errors so call sites can wrap uniformly.
//
// All checks are pure and allocate nothing (beyond the error on failure).

package sparse

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return sparseErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Rows() == b.Cols().
//
// The dimension rule compares the LEFT operand's row count with the RIGHT
// operand's column count. Both counts are high-water marks, so a matrix whose
// corner was never set may report smaller dimensions than intended.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.rows != b.cols {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex panics when a coordinate is below the 1-based origin.
func validateIndex(row, col int) {
	if row < 1 {
		panic(panicRowOutOfRange)
	}
	if col < 1 {
		panic(panicColOutOfRange)
	}
}
