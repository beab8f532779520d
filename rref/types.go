// SPDX-License-Identifier: MIT
// Package rref: central type declarations for the reduction engine.

package rref

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// DefaultEpsilon is the near-zero threshold callers pass when they have no
// stricter policy of their own.
const DefaultEpsilon = scalar.DefaultEpsilon

// Stage names how far a reduction lifecycle has progressed. It only moves
// forward: Unreduced → REF → RREF; Reset starts a new lifecycle.
type Stage uint8

const (
	// Unreduced means no elimination has run since construction or Reset.
	Unreduced Stage = iota
	// REF means the matrix is in row echelon form and pivots are recorded.
	REF
	// RREF means pivots are scaled to 1 and eliminated above and below.
	RREF
)

// String renders the stage for logs and test failures.
func (s Stage) String() string {
	switch s {
	case Unreduced:
		return "Unreduced"
	case REF:
		return "REF"
	case RREF:
		return "RREF"
	default:
		return "Unknown"
	}
}

// Pivot records one accepted pivot position. Pivots are appended in
// elimination order, so Row always equals the pivot's ordinal and Col is
// strictly increasing across the sequence.
type Pivot struct {
	Row int
	Col int
}

// Echelon is the reduction engine. It owns a private copy of the matrix it
// was built from; callers never observe intermediate elimination states
// except through Matrix(), which returns a fresh clone.
//
// The zero value is not usable; construct with New.
type Echelon[T scalar.Scalar] struct {
	m      *matrix.Dense[T]
	pivots []Pivot
	stage  Stage
}
