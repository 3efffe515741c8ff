// SPDX-License-Identifier: MIT

// Package sparse - gonum interop and debug rendering.
//
// Purpose:
//   - Materialize a COO matrix as *mat.Dense for debugging and cross-checks.
//   - Ingest any mat.Matrix, using its non-zero iterator when it has one.
//   - Render the coordinate list (String) or the dense grid (FormatDense).
//
// Coordinates: gonum is 0-based, this package is 1-based; (r, c) here maps
// to (r-1, c-1) in gonum.
package sparse

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader = "Sparse %dx%d, %d points\n"
	_fmtEntry  = "(%d, %d) = %g\n"
)

// ToDense materializes m as a Rows()×Cols() gonum matrix.
// MAIN DESCRIPTION:
//   - Dense export; intended for debugging and small matrices only.
//
// Implementation:
//   - Stage 1: reject empty shapes (gonum panics on zero dimensions).
//   - Stage 2: allocate the zero-filled dense and scatter stored entries.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (wrapped with the "ToDense" tag).
//
// Complexity:
//   - Time O(rows*cols + n), Space O(rows*cols).
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(opToDense, ErrEmptyMatrix)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for _, e := range m.entries {
		d.Set(e.Row-1, e.Col-1, e.Value)
	}

	return d, nil
}

// FromDense builds a sparse matrix holding the nonzero cells of src.
// MAIN DESCRIPTION:
//   - Ingest any gonum matrix; sparse gonum types are walked through
//     mat.NonZeroDoer, everything else by a row-major scan.
//
// Behavior highlights:
//   - The corner (r, c) is always stored, zero or not, so Dims() of the
//     result equals src.Dims().
//   - A row-major scan appends in order and leaves the result sorted; a
//     NonZeroDoer may visit cells in any order and only lowers the sorted bit.
//
// Complexity:
//   - Time O(r*c) for a scan, O(nnz) through NonZeroDoer (plus a lazy sort).
func FromDense(src mat.Matrix, opts ...Option) *Matrix {
	m := New(opts...)
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return m
	}

	if nz, ok := src.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			if v != 0 {
				m.Set(i+1, j+1, v)
			}
		})
	} else {
		var v float64
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v = src.At(i, j); v != 0 {
					m.Set(i+1, j+1, v)
				}
			}
		}
	}

	m.Set(r, c, src.At(r-1, c-1)) // witness the declared shape

	return m
}

// FormatDense writes the dense grid of m to w using gonum's formatter.
// Errors: ErrNilMatrix, ErrEmptyMatrix, or the writer's error.
func FormatDense(w io.Writer, m *Matrix) error {
	d, err := m.ToDense()
	if err != nil {
		return sparseErrorf(opFormatDense, err)
	}
	if _, err = fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze())); err != nil {
		return sparseErrorf(opFormatDense, err)
	}

	return nil
}

// String renders the coordinate list in (row, col) order, one entry per line.
// Like At, it may sort the list as a side effect.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtHeader, m.rows, m.cols, len(m.entries))
	for e := range m.All() {
		fmt.Fprintf(&sb, _fmtEntry, e.Row, e.Col, e.Value)
	}

	return sb.String()
}
