// Package matrix_test provides benchmarks for the core container kernels,
// using frand-filled Dense fixtures.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1)
			y := RandomDense(b, n, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1)
			y := RandomDense(b, n, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(x, 1e-9)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, _, err := matrix.QR(x, 1e-9)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = q
			}
		})
	}
}
