// Package linsys_test: randomized cross-checks against gonum's solver.
package linsys_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// toGonum converts a Dense into gonum's mat.Dense for oracle comparisons.
func toGonum(t *testing.T, m *matrix.Dense[float64]) *mat.Dense {
	t.Helper()
	rows, cols := m.Shape()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data)
}

// TestSolveOracle solves random full-rank systems and compares the result
// against both the planted solution and gonum's LU-based SolveVec.
func TestSolveOracle(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			for trial := 0; trial < 10; trial++ {
				a, b, want := randomSolvable(t, n)

				sys, err := linsys.NewSystem(a, b)
				require.NoError(t, err)
				kind, err := sys.Solve(eps)
				require.NoError(t, err)
				require.Equal(t, linsys.Unique, kind)

				x, basis, err := sys.Solution()
				require.NoError(t, err)
				require.Nil(t, basis)

				// planted solution
				for i := 0; i < n; i++ {
					require.InDelta(t, want[i], x[i], 1e-8)
				}

				// gonum agreement
				bv := make([]float64, n)
				for i := 0; i < n; i++ {
					v, err2 := b.At(i, 0)
					require.NoError(t, err2)
					bv[i] = v
				}
				var ref mat.VecDense
				require.NoError(t, ref.SolveVec(toGonum(t, a), mat.NewVecDense(n, bv)))
				for i := 0; i < n; i++ {
					require.InDelta(t, ref.AtVec(i), x[i], 1e-8)
				}
			}
		})
	}
}

// TestResidualProperty checks A·x ≈ b for every solvable random system and
// for particular solutions of deliberately widened (underdetermined) ones.
func TestResidualProperty(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		a, b, _ := randomSolvable(t, 4)
		sys, err := linsys.NewSystem(a, b)
		require.NoError(t, err)
		_, err = sys.Solve(eps)
		require.NoError(t, err)
		x, _, err := sys.Solution()
		require.NoError(t, err)
		require.LessOrEqual(t, residual(t, a, b, x), 1e-8)
	}

	for trial := 0; trial < 20; trial++ {
		// 3 equations, 5 unknowns: consistent by construction, never unique
		full, rhs, _ := randomSolvable(t, 3)
		pad, err := matrix.NewDense[float64](3, 2)
		require.NoError(t, err)
		wide, err := matrix.Augment(full, pad)
		require.NoError(t, err)

		sys, err := linsys.NewSystem(wide, rhs)
		require.NoError(t, err)
		kind, err := sys.Solve(eps)
		require.NoError(t, err)
		require.Equal(t, linsys.Infinite, kind)

		x, basis, err := sys.Solution()
		require.NoError(t, err)
		require.LessOrEqual(t, residual(t, wide, rhs, x), 1e-8)

		// every basis direction must be homogeneous: A·v ≈ 0
		zero := column(t, 0, 0, 0)
		for _, v := range basis {
			require.LessOrEqual(t, residual(t, wide, zero, v), 1e-8)
		}
	}
}
