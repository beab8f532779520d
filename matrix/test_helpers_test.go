// SPDX-License-Identifier: MIT
// Shared helpers for matrix package tests. Helpers fail the calling test on
// construction errors so scenario bodies stay linear.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// MustDense builds a zero rows x cols matrix or fails the test.
func MustDense(t testing.TB, rows, cols int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](rows, cols)
	require.NoError(t, err)
	return m
}

// MustFromRows builds a matrix from row slices or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// MustIdentity builds the n x n identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewIdentity[float64](n)
	require.NoError(t, err)
	return m
}

// RandomDense fills a rows x cols matrix with entries in [-scale, scale).
func RandomDense(t testing.TB, rows, cols int, scale float64) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, (2*frand.Float64()-1)*scale))
		}
	}
	return m
}
