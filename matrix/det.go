// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Determinant computes det(M) by Gaussian elimination with partial pivoting
// on a scratch clone.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); clone into scratch storage.
//   - Stage 2: for each column pick the row with the largest |value| at or
//     below the diagonal; a best candidate below eps means the column is
//     numerically dependent and the determinant is exactly 0.
//   - Stage 3: swap the pivot row into place (each swap flips the sign),
//     multiply the pivot into the accumulator, eliminate below and force the
//     eliminated cells to exact zero.
//   - Stage 4: snap |det| < eps to 0 before returning.
//
// Behavior highlights:
//   - The receiver is never mutated; elimination runs on a clone.
//   - Near-zero elimination factors are skipped (same policy as AddScaledRow).
//
// Inputs:
//   - m: square matrix (non-nil).
//   - eps: near-zero threshold for pivot viability and the final snap.
//
// Returns:
//   - T: the determinant (exactly 0 for rank-deficient input within eps).
//   - error: ErrNilMatrix or ErrNonSquare wrapped with opDeterminant.
//
// Determinism: fixed column sweep; ties in pivot selection keep the first row.
// Complexity: Time O(n^3), Space O(n^2) for the scratch clone.
func Determinant[T scalar.Scalar](m *Dense[T], eps T) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	n := m.r
	a := m.Clone()
	det := T(1)
	sign := T(1)
	for col := 0; col < n; col++ {
		// partial pivot: largest |value| at or below the diagonal
		best := col
		bestAbs := scalar.Abs(a.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := scalar.Abs(a.data[r*n+col]); v > bestAbs {
				best, bestAbs = r, v
			}
		}
		if bestAbs < eps {
			return zero, nil
		}
		if best != col {
			_ = a.ExchangeRows(col, best) // indices verified above
			sign = -sign
		}
		piv := a.data[col*n+col]
		det *= piv
		for r := col + 1; r < n; r++ {
			factor := -a.data[r*n+col] / piv
			_ = a.AddScaledRow(r, col, factor, eps)
			a.data[r*n+col] = 0
		}
	}
	det *= sign
	if scalar.IsZero(det, eps) {
		return zero, nil
	}
	return det, nil
}
