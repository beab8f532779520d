// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels shared by every consumer:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector products. All kernels perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Kernels use the central validators and return plain sentinels wrapped
//     via matrixErrorf at the facade.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDiv         = "Div"
	opNeg         = "Neg"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opQR          = "QR"
	opIsSymmetric = "IsSymmetric"
	opIsOrtho     = "IsOrthogonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign in {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and the loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over the shared row-major layout.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - sign: +1 for Add, -1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - *Dense[T]: newly allocated result.
//   - error: validation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix         (from ValidateSameShape when a or b is nil).
//   - ErrDimensionMismatch (from ValidateSameShape when shapes differ).
//
// Determinism: single flat slice walk 0..(r*c-1).
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub[T scalar.Scalar](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}
	return out, nil
}

// Add returns a new matrix C = A + B.
// See addSub for validation and complexity.
func Add[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns a new matrix C = A - B.
// See addSub for validation and complexity.
func Sub[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, -1, opSub)
}

// Mul returns the matrix product C = A * B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result (a.r x b.c).
//   - Stage 2: i -> k -> j loop order over flat storage; rows of A with a
//     zero at (i,k) skip the inner sweep entirely.
//
// Behavior highlights:
//   - Deterministic accumulation order (k ascending per output row).
//   - Inputs remain immutable; one allocation for the result.
//
// Inputs:
//   - a: left operand (r x n), b: right operand (n x c).
//
// Returns:
//   - *Dense[T]: newly allocated product (r x c).
//   - error: validation failures wrapped with opMul.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Determinism: fixed i -> k -> j loops.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		aRow := a.data[i*a.c : (i+1)*a.c]
		oRow := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < a.c; k++ {
			aik := aRow[k]
			if aik == 0 {
				continue
			}
			bRow := b.data[k*b.c : (k+1)*b.c]
			for j := 0; j < b.c; j++ {
				oRow[j] += aik * bRow[j]
			}
		}
	}
	return out, nil
}

// Transpose returns a new matrix with rows and columns exchanged.
func Transpose[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}
	return out, nil
}

// Scale returns a new matrix alpha * M.
func Scale[T scalar.Scalar](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out, nil
}

// Div returns a new matrix M / alpha.
// Divisors with |alpha| < eps are rejected with ErrDivideByZero.
func Div[T scalar.Scalar](m *Dense[T], alpha, eps T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if scalar.IsZero(alpha, eps) {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] /= alpha
	}
	return out, nil
}

// Neg returns a new matrix -M.
func Neg[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	out, err := Scale(m, -1)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	return out, nil
}

// MatVec returns the product M * x as a fresh slice.
// Returns ErrNilMatrix or ErrDimensionMismatch when len(x) != Cols.
func MatVec[T scalar.Scalar](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var sum T
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Equal reports whether a and b share a shape and agree elementwise within eps.
// Nil operands are equal only to nil.
func Equal[T scalar.Scalar](a, b *Dense[T], eps T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !scalar.IsZero(a.data[i]-b.data[i], eps) {
			return false
		}
	}
	return true
}

// IsSquare reports whether m is non-nil with Rows == Cols.
func IsSquare[T scalar.Scalar](m *Dense[T]) bool {
	return m != nil && m.r == m.c
}

// IsSymmetric reports whether m equals its transpose within eps.
// Returns ErrNilMatrix for nil input; non-square matrices report false.
func IsSymmetric[T scalar.Scalar](m *Dense[T], eps T) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsSymmetric, err)
	}
	if m.r != m.c {
		return false, nil
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if !scalar.IsZero(m.data[i*m.c+j]-m.data[j*m.c+i], eps) {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsOrthogonal reports whether Mᵀ * M equals the identity within eps.
// Returns ErrNilMatrix for nil input; non-square matrices report false.
func IsOrthogonal[T scalar.Scalar](m *Dense[T], eps T) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsOrtho, err)
	}
	if m.r != m.c {
		return false, nil
	}
	mt, err := Transpose(m)
	if err != nil {
		return false, matrixErrorf(opIsOrtho, err)
	}
	prod, err := Mul(mt, m)
	if err != nil {
		return false, matrixErrorf(opIsOrtho, err)
	}
	id, err := NewIdentity[T](m.r)
	if err != nil {
		return false, matrixErrorf(opIsOrtho, err)
	}
	return Equal(prod, id, eps), nil
}
