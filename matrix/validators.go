// SPDX-License-Identifier: MIT
// Package matrix: canonical validators shared by every kernel.
// Each validator returns a plain sentinel wrapped with its tag so facades can
// add their own operation prefix without double-wrapping the cause.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// validatorErrorf attaches the validator tag to the underlying sentinel.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects nil matrices.
// Returns ErrNilMatrix when m is nil.
func ValidateNotNil[T scalar.Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape rejects operand pairs whose shapes differ.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSameShape[T scalar.Scalar](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w",
			a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare rejects non-square matrices.
// Returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare[T scalar.Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	return nil
}

// ValidateMulCompatible rejects pairs where a.Cols != b.Rows.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible[T scalar.Scalar](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: inner %d vs %d: %w",
			a.c, b.r, ErrDimensionMismatch)
	}
	return nil
}

// ValidateVecLen rejects vectors whose length differs from want.
// Returns ErrDimensionMismatch.
func ValidateVecLen[T scalar.Scalar](x []T, want int) error {
	if len(x) != want {
		return fmt.Errorf("ValidateVecLen: have %d, want %d: %w",
			len(x), want, ErrDimensionMismatch)
	}
	return nil
}
