// SPDX-License-Identifier: MIT
// Package linsys: sentinel errors.
//
// Shape violations reuse the matrix sentinels (ErrNilMatrix,
// ErrDimensionMismatch); the two errors below are sequencing and
// consistency failures specific to the solver lifecycle.

package linsys

import "errors"

var (
	// ErrNotSolved is returned when Kind or Solution is called before Solve.
	ErrNotSolved = errors.New("linsys: system not solved yet; call Solve first")

	// ErrNoSolution is returned by Solution when the system is inconsistent.
	// Classification itself never fails: Solve reports NoSolution as a Kind.
	ErrNoSolution = errors.New("linsys: system has no solution")
)
