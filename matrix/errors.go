// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary - callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r < 1 or
	// c < 1) or when provided data does not fill the requested shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows is returned by NewFromRows when input rows differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Determinant, QR iteration, inversion).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrScaleFactor is returned by ScaleRow when |factor| < eps: scaling a
	// row by a near-zero factor silently destroys rank information, so the
	// container refuses it.
	ErrScaleFactor = errors.New("matrix: scale factor below eps")

	// ErrDivideByZero is returned by Div when |divisor| < eps.
	ErrDivideByZero = errors.New("matrix: divisor below eps")
)
