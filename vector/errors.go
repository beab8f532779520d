// SPDX-License-Identifier: MIT
// Package vector: sentinel error set. Algorithms return these sentinels
// (optionally wrapped with an operation tag) and tests match via errors.Is.

package vector

import "errors"

var (
	// ErrBadLength is returned when a requested length is < 1.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroNorm is returned by Normalized when the Euclidean norm is
	// below the caller's epsilon; the caller decides the fallback.
	ErrZeroNorm = errors.New("vector: zero norm within eps")

	// ErrDivideByZero is returned by Div when |divisor| < eps.
	ErrDivideByZero = errors.New("vector: divisor below eps")
)
