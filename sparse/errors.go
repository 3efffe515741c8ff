// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All fallible operations return these sentinels (optionally wrapped with an
// operation tag); callers MUST match them via errors.Is.
// Panics are reserved for programmer errors (see the panic* constants).

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands whose declared dimensions are
	// incompatible for Mul (left.Rows() != right.Cols()).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or columns was passed
	// where a materialized shape is required (dense export).
	ErrEmptyMatrix = errors.New("sparse: empty matrix")
)

// Panic messages (programmer errors only).
const (
	panicRowOutOfRange    = "sparse: row index must be >= 1"
	panicColOutOfRange    = "sparse: column index must be >= 1"
	panicCapacityNegative = "sparse: WithCapacity: capacity must be >= 0"
)

// Operation tags used when wrapping sentinels.
const (
	opMul         = "Mul"
	opToDense     = "ToDense"
	opFormatDense = "FormatDense"
)

// sparseErrorf wraps err with an operation tag, preserving errors.Is.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
