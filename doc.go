// Package sparsecoo stores large, mostly-empty matrices as coordinate lists
// and multiplies them without ever building the dense form.
//
// What lives where:
//
//	sparse/   — the COO Matrix: lazy sort/clean invariants, point access,
//	            sparsity-aware product, iteration and gonum interop
//	examples/ — a runnable driver multiplying two diagonal matrices
//
// Quick example:
//
//	a, b := sparse.New(), sparse.New()
//	for i := 1; i <= 1000; i++ {
//		a.Set(i, i, 1)
//		b.Set(i, i, 1)
//	}
//	p, err := sparse.Mul(a, b) // p.NumberOfPoints() == 1000
//
// Coordinates are 1-based. Reads of absent coordinates return 0; writes never
// fail. Mul reports ErrDimensionMismatch when left.Rows() != right.Cols().
//
//	go get github.com/katalvlaran/sparsecoo/sparse
package sparsecoo
