// SPDX-License-Identifier: MIT
// Package linsys: central type declarations for the solver.

package linsys

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// DefaultEpsilon is the near-zero threshold callers pass when they have no
// stricter policy of their own.
const DefaultEpsilon = scalar.DefaultEpsilon

// Kind classifies a solved system by its pivot layout.
type Kind uint8

const (
	// NoSolution means the RREF of [A|b] has a pivot in the b column: some
	// row reads 0 = 1 and no x can satisfy it.
	NoSolution Kind = iota
	// Unique means every unknown owns a pivot; exactly one x solves A·x = b.
	Unique
	// Infinite means at least one unknown is free; solutions form a family
	// parameterized by the homogeneous basis.
	Infinite
)

// String renders the classification for logs and test failures.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "no solution"
	case Unique:
		return "unique solution"
	case Infinite:
		return "infinite solutions"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// System is a solver instance bound to one A·x = b problem. It owns private
// clones of its inputs; Solve may be called repeatedly (for instance with a
// different epsilon) and re-derives the classification each time.
//
// The zero value is not usable; construct with NewSystem.
type System[T scalar.Scalar] struct {
	aug    *matrix.Dense[T] // pristine [A|b], assembled at construction
	n      int              // number of unknowns == Cols(A)
	red    *matrix.Dense[T] // RREF of [A|b], valid once solved
	pivots []rref.Pivot     // pivots of red, valid once solved
	kind   Kind
	solved bool
}
