// SPDX-License-Identifier: MIT
// Package scalar: generic numeric foundation for lvlinalg.
// This file defines the Scalar constraint, the module-wide epsilon default,
// and the tiny helpers every other package leans on. No sentinels live here;
// the package is pure functions and constants.

package scalar

import "math"

// Scalar enumerates the element kinds lvlinalg is generic over.
// Pivot selection orders candidates by |value|, which requires a totally
// ordered field; Go's floating-point kinds are the supported carriers.
type Scalar interface {
	~float32 | ~float64
}

// DefaultEpsilon is the near-zero threshold applied wherever a caller does
// not supply one: entries with |x| < eps are treated as exact zeros during
// pivot selection, elimination and final snapping.
const DefaultEpsilon = 1e-9

// Abs returns |x|.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x, computed in float64 and converted back
// to T. Negative inputs yield NaN exactly as math.Sqrt does.
func Sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}

// IsZero reports whether |x| < eps.
func IsZero[T Scalar](x, eps T) bool {
	return Abs(x) < eps
}
