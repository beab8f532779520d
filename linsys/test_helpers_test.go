// Shared helpers for linsys package tests.
package linsys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
)

// mustFromRows builds a matrix from row slices or fails the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// column builds an n x 1 right-hand side from values.
func column(t testing.TB, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](len(vals), 1)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i, 0, v))
	}
	return m
}

// randomSolvable builds an invertible n x n coefficient matrix (diagonally
// dominant, so full rank is guaranteed, not just likely), a random exact
// solution, and the matching right-hand side b = A·x.
func randomSolvable(t testing.TB, n int) (a, b *matrix.Dense[float64], x vector.Vector[float64]) {
	t.Helper()
	a, err := matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 2*frand.Float64() - 1
			if i == j {
				v += float64(n) // dominant diagonal
			}
			require.NoError(t, a.Set(i, j, v))
		}
	}
	x = make(vector.Vector[float64], n)
	for i := range x {
		x[i] = 2*frand.Float64() - 1
	}
	bs, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	b = column(t, bs...)
	return a, b, x
}

// residual returns the max |A·x - b| entry for a candidate solution.
func residual(t testing.TB, a, b *matrix.Dense[float64], x vector.Vector[float64]) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	worst := 0.0
	for i, v := range ax {
		got, err2 := b.At(i, 0)
		require.NoError(t, err2)
		if d := math.Abs(v - got); d > worst {
			worst = d
		}
	}
	return worst
}
