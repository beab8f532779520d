// Shared helpers for rref package tests.
package rref_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
)

// mustFromRows builds a matrix from row slices or fails the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// mustEngine builds an engine or fails the test.
func mustEngine(t testing.TB, m *matrix.Dense[float64]) *rref.Echelon[float64] {
	t.Helper()
	e, err := rref.New(m)
	require.NoError(t, err)
	return e
}

// randomDense fills a rows x cols matrix with entries in [-scale, scale).
func randomDense(t testing.TB, rows, cols int, scale float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, (2*frand.Float64()-1)*scale))
		}
	}
	return m
}
