// SPDX-License-Identifier: MIT
// Package rref: sentinel error set. Shape and nil conditions reuse the
// matrix package sentinels (the container detects them); this file adds only
// the engine's own failure modes.

package rref

import "errors"

var (
	// ErrBadEpsilon is returned when a reduction is asked to run with a
	// non-positive near-zero threshold.
	ErrBadEpsilon = errors.New("rref: epsilon must be positive")

	// ErrSingular is returned by Inverse when the coefficient block yields
	// fewer than n pivots, i.e. the matrix is singular within eps.
	ErrSingular = errors.New("rref: matrix is singular within eps")
)
