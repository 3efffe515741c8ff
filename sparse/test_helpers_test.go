// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsecoo/sparse"
	"gonum.org/v1/gonum/mat"
)

// coord is a 1-based coordinate used by table-driven tests.
type coord struct{ r, c int }

// randomSparse builds an r×c matrix with roughly density*r*c nonzero cells,
// inserted in shuffled order. The corner is always set to a nonzero value so
// the declared shape is exactly r×c.
func randomSparse(tb testing.TB, rng *rand.Rand, r, c int, density float64) *sparse.Matrix {
	tb.Helper()
	var cells []coord
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if rng.Float64() < density {
				cells = append(cells, coord{i, j})
			}
		}
	}
	rng.Shuffle(len(cells), func(a, b int) { cells[a], cells[b] = cells[b], cells[a] })

	m := sparse.New()
	for _, p := range cells {
		v := 0.5 + rng.Float64() // |v| >= 0.5, never zero
		if rng.Intn(2) == 0 {
			v = -v
		}
		m.Set(p.r, p.c, v)
	}
	m.Set(r, c, 1)

	return m
}

// mustDense exports m to gonum or fails the test.
func mustDense(tb testing.TB, m *sparse.Matrix) *mat.Dense {
	tb.Helper()
	d, err := m.ToDense()
	if err != nil {
		tb.Fatalf("ToDense: %v", err)
	}

	return d
}

// diagonal builds a matrix with value v at (i, i) for i in [1, n).
func diagonal(n int, v float64) *sparse.Matrix {
	m := sparse.New(sparse.WithCapacity(n))
	for i := 1; i < n; i++ {
		m.Set(i, i, v)
	}

	return m
}
