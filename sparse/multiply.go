// SPDX-License-Identifier: MIT

// Package sparse - sparsity-aware matrix product.
//
// Purpose:
//   - Multiply two COO matrices touching only stored entries.
//   - Never build a dense operand or a dense accumulator.
//
// Determinism:
//   - Rows are visited ascending, columns ascending, inner indices ascending:
//     floating-point sums are reproducible run to run.
package sparse

import (
	"cmp"
	"slices"
)

// rowRun is a contiguous run of a sorted entry list sharing one row.
type rowRun struct {
	row     int
	entries []Entry // ascending by Col
}

// colGroup gathers the entries of one column, ascending by Row.
type colGroup struct {
	col     int
	entries []Entry
}

// Multiply returns m × other. See Mul.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) { return Mul(m, other) }

// Mul computes the product left × right as a new sparse matrix.
// MAIN DESCRIPTION:
//   - Sparse × sparse product; result entries are only the nonzero dot products.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (left.Rows() must equal right.Cols()).
//     On failure nothing is computed and neither operand is touched.
//   - Stage 2: force both operands clean and sorted (side effect on the inputs).
//   - Stage 3: split left into row runs and right into column groups.
//   - Stage 4: for every (row run, column group) pair, merge-join on the inner
//     index (left Col == right Row) and Set nonzero sums on the result.
//
// Behavior highlights:
//   - Result dimensions are left.Rows() × right.Cols() even when the corner
//     itself sums to zero.
//   - Sums that come out exactly zero are never stored, so the result is clean.
//   - Mul(a, a) is valid: both views read the same cleaned, sorted list.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with the "Mul" tag).
//
// Complexity:
//   - Time O(R·C·(r̄ + c̄)) where R, C are the distinct left rows / right
//     columns and r̄, c̄ the average run lengths; Space O(nnz(right) + nnz(result)).
func Mul(left, right *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	left.ensureClean()
	left.ensureSorted()
	right.ensureClean()
	right.ensureSorted()

	rowRuns := splitRows(left.entries)
	colGroups := groupCols(right.entries)

	hint := min(max(len(left.entries), len(right.entries)), maxProductCapacity)
	res := New(WithCapacity(hint))
	res.rows = left.rows
	res.cols = right.cols

	var sum float64
	for _, rr := range rowRuns {
		for _, cg := range colGroups {
			sum = sparseDot(rr.entries, cg.entries)
			if sum != 0 {
				res.Set(rr.row, cg.col, sum) // ascending (row, col): append path
			}
		}
	}

	return res, nil
}

// splitRows cuts a sorted entry list into per-row runs (no copying).
// Rows come out in ascending order, i.e. first-occurrence order.
func splitRows(entries []Entry) []rowRun {
	var runs []rowRun
	start := 0
	for i := 1; i <= len(entries); i++ {
		if i == len(entries) || entries[i].Row != entries[start].Row {
			runs = append(runs, rowRun{row: entries[start].Row, entries: entries[start:i]})
			start = i
		}
	}

	return runs
}

// groupCols gathers a sorted entry list into per-column groups.
// Walking the row-major list keeps each group ascending by Row. Groups are
// returned ascending by column so the product is emitted in (row, col) order
// and every Set on the result takes the O(1) append path.
func groupCols(entries []Entry) []colGroup {
	pos := make(map[int]int) // column -> index into groups
	var groups []colGroup
	for _, e := range entries {
		i, ok := pos[e.Col]
		if !ok {
			i = len(groups)
			pos[e.Col] = i
			groups = append(groups, colGroup{col: e.Col})
		}
		groups[i].entries = append(groups[i].entries, e)
	}
	slices.SortFunc(groups, func(a, b colGroup) int { return cmp.Compare(a.col, b.col) })

	return groups
}

// sparseDot sums a.Value*b.Value over pairs with a.Col == b.Row.
// row is ascending by Col and col ascending by Row, so a single merge pass
// visits each match exactly once.
// Complexity: O(len(row) + len(col)).
func sparseDot(row, col []Entry) float64 {
	var (
		sum  float64
		i, j int
	)
	for i < len(row) && j < len(col) {
		switch {
		case row[i].Col < col[j].Row:
			i++
		case row[i].Col > col[j].Row:
			j++
		default:
			sum += row[i].Value * col[j].Value
			i++
			j++
		}
	}

	return sum
}
