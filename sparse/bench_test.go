// SPDX-License-Identifier: MIT

// Benchmarks for the COO matrix: append-path and random-order inserts,
// lookups, and sparse products.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsecoo/sparse"
)

// benchSizes are the matrix orders to benchmark inserts with.
var benchSizes = []int{1000, 10000}

// mulSizes are kept smaller: Mul visits every (row, column) group pair.
var mulSizes = []int{100, 1000}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix
	sinkF float64
)

func BenchmarkSetSequential(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkM = diagonal(n+1, 1)
			}
		})
	}
}

func BenchmarkSetRandom(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			perm := rand.New(rand.NewSource(1)).Perm(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := sparse.New(sparse.WithCapacity(n))
				for _, k := range perm {
					m.Set(k+1, k+1, 1)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	m := randomSparse(b, rand.New(rand.NewSource(3)), 500, 500, 0.02)
	rng := rand.New(rand.NewSource(4))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = m.At(rng.Intn(500)+1, rng.Intn(500)+1)
	}
}

func BenchmarkMulDiagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range mulSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			l, r := diagonal(n+1, 1), diagonal(n+1, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := sparse.Mul(l, r)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}

func BenchmarkMulRandom(b *testing.B) {
	b.ReportAllocs()
	for _, density := range []float64{0.01, 0.05} {
		b.Run(fmt.Sprintf("density=%g", density), func(b *testing.B) {
			rng := rand.New(rand.NewSource(5))
			l := randomSparse(b, rng, 300, 300, density)
			r := randomSparse(b, rng, 300, 300, density)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := sparse.Mul(l, r)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}
