// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// QR factors A into Q * R by classical Gram-Schmidt over the columns of A.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a); Q starts as a clone of A.
//   - Stage 2: column j of Q becomes a_j minus its projections onto every
//     finished q_k (k < j), then is normalized. A residual with norm < eps is
//     kept unnormalized: the column is numerically dependent and forcing a
//     unit vector out of noise would poison later projections.
//   - Stage 3: R = Qᵀ * A, computed densely, with the strict lower triangle
//     forced to exact zero afterwards.
//
// Behavior highlights:
//   - A is never mutated; Q has A's shape, R is Cols x Cols.
//   - For full-column-rank input Q has orthonormal columns and A ≈ Q*R.
//   - Rank-deficient columns surface as near-zero columns of Q and near-zero
//     rows of R rather than as errors; degeneracy is data, not failure.
//
// Inputs:
//   - a: any r x c matrix (non-nil).
//   - eps: near-zero threshold for the normalization guard.
//
// Returns:
//   - q: r x c factor, r: c x c upper-triangular factor.
//   - error: ErrNilMatrix wrapped with opQR.
//
// Determinism: fixed column order, fixed projection order k ascending.
// Complexity: Time O(r*c^2), Space O(r*c + c^2).
//
// AI-Hints:
//   - Feed square iterates from the eigen loop directly; no reshaping needed.
//   - Check IsOrthogonal(q, eps) only for full-rank inputs; dependent columns
//     intentionally leave near-zero (non-unit) columns in Q.
func QR[T scalar.Scalar](a *Dense[T], eps T) (q, r *Dense[T], err error) {
	if err = ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := a.r, a.c
	q = a.Clone()
	for j := 0; j < cols; j++ {
		// subtract projections of the original column a_j onto finished q_k
		for k := 0; k < j; k++ {
			var dot T
			for i := 0; i < rows; i++ {
				dot += q.data[i*cols+k] * a.data[i*cols+j]
			}
			for i := 0; i < rows; i++ {
				q.data[i*cols+j] -= dot * q.data[i*cols+k]
			}
		}
		var norm T
		for i := 0; i < rows; i++ {
			v := q.data[i*cols+j]
			norm += v * v
		}
		norm = scalar.Sqrt(norm)
		if norm < eps {
			continue // dependent column: keep the residual as-is
		}
		for i := 0; i < rows; i++ {
			q.data[i*cols+j] /= norm
		}
	}
	r, err = NewDense[T](cols, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < cols; i++ {
		for j := 0; j < cols; j++ {
			if i > j {
				continue // strict lower triangle stays exactly zero
			}
			var sum T
			for k := 0; k < rows; k++ {
				sum += q.data[k*cols+i] * a.data[k*cols+j]
			}
			r.data[i*cols+j] = sum
		}
	}
	return q, r, nil
}
