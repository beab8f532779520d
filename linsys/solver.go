// SPDX-License-Identifier: MIT
// Package linsys: system construction, classification and solution recovery.
// The solver delegates every numeric decision to the rref engine; this file
// only assembles [A|b], reads the pivot layout and shapes the answer.

package linsys

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opNewSystem = "NewSystem"
	opSolve     = "Solve"
	opKind      = "Kind"
	opSolution  = "Solution"
)

// linsysErrorf wraps err with an operation tag, preserving the cause for
// errors.Is/As. Call only with err != nil.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewSystem builds a solver for A·x = b over private clones of the inputs.
//
// b must be a column (exactly one column) with as many rows as a; any other
// shape is ErrDimensionMismatch. Nil inputs are ErrNilMatrix.
func NewSystem[T scalar.Scalar](a, b *matrix.Dense[T]) (*System[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, linsysErrorf(opNewSystem, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, linsysErrorf(opNewSystem, err)
	}
	if b.Cols() != 1 {
		return nil, fmt.Errorf("%s: rhs has %d columns, want 1: %w",
			opNewSystem, b.Cols(), matrix.ErrDimensionMismatch)
	}
	aug, err := matrix.Augment(a, b) // rejects a.Rows() != b.Rows()
	if err != nil {
		return nil, linsysErrorf(opNewSystem, err)
	}
	return &System[T]{aug: aug, n: a.Cols()}, nil
}

// Solve reduces [A|b] to RREF and classifies the system.
//
// Implementation:
//   - Stage 1: run a fresh rref lifecycle over a clone of the pristine
//     augmented matrix, so repeated calls never compound rounding.
//   - Stage 2: classify by pivot layout, checked in this order:
//     a pivot in column n (the b column) → NoSolution;
//     otherwise one pivot per unknown    → Unique;
//     otherwise                          → Infinite.
//
// Behavior highlights:
//   - Classification happens here, once; Solution only reads it.
//   - Overdetermined and underdetermined shapes need no special cases: zero
//     rows of the RREF are consistent and simply carry no pivot.
//   - NoSolution is an answer, not an error.
//
// Inputs:
//   - eps: near-zero threshold; must be positive.
//
// Returns:
//   - Kind: the classification, also retained for Kind and Solution.
//   - error: ErrBadEpsilon or a wrapped engine error; the system stays
//     unsolved on failure.
//
// Determinism: fixed elimination order inherited from the engine.
// Complexity: Time O(r·(n+1)·min(r,n+1)), Space O(r·(n+1)).
func (s *System[T]) Solve(eps T) (Kind, error) {
	e, err := rref.New(s.aug)
	if err != nil {
		return 0, linsysErrorf(opSolve, err)
	}
	if err = e.ToRREF(eps); err != nil {
		return 0, linsysErrorf(opSolve, err)
	}
	pivots := e.Pivots()

	kind := Infinite
	switch {
	case pivotInColumn(pivots, s.n):
		kind = NoSolution
	case len(pivots) == s.n:
		kind = Unique
	}

	s.red = e.Matrix()
	s.pivots = pivots
	s.kind = kind
	s.solved = true
	return kind, nil
}

// pivotInColumn reports whether any pivot landed in column col.
func pivotInColumn(pivots []rref.Pivot, col int) bool {
	for _, p := range pivots {
		if p.Col == col {
			return true
		}
	}
	return false
}

// Kind returns the classification of the last Solve.
// Returns ErrNotSolved before the first successful Solve.
func (s *System[T]) Kind() (Kind, error) {
	if !s.solved {
		return 0, linsysErrorf(opKind, ErrNotSolved)
	}
	return s.kind, nil
}

// Solution recovers the solution set of the last Solve.
//
// Implementation:
//   - Unique: every unknown owns a pivot, so x[p.Col] = rref(p.Row, n) fills
//     the whole vector; the basis is nil.
//   - Infinite: the particular solution pins every free unknown to zero and
//     reads the pivot unknowns the same way; the basis is the kernel of the
//     RREF restricted to the first n columns, one vector per free unknown
//     (the b column is never free here: a pivot there means NoSolution).
//
// Behavior highlights:
//   - Sequencing misuse is a hard error: ErrNotSolved before Solve.
//   - Inconsistent systems yield ErrNoSolution, never fabricated numbers.
//   - Returned vectors are fresh; mutating them never touches the system.
//
// Returns:
//   - vector.Vector[T]: the unique or particular solution, length n.
//   - []vector.Vector[T]: the homogeneous basis; nil unless Infinite.
//   - error: ErrNotSolved or ErrNoSolution.
//
// Determinism: basis order follows ascending free-column index.
// Complexity: Time O(n·rank), Space O(n·(1+nullity)).
func (s *System[T]) Solution() (vector.Vector[T], []vector.Vector[T], error) {
	if !s.solved {
		return nil, nil, linsysErrorf(opSolution, ErrNotSolved)
	}
	if s.kind == NoSolution {
		return nil, nil, linsysErrorf(opSolution, ErrNoSolution)
	}

	x := make(vector.Vector[T], s.n)
	for _, p := range s.pivots {
		v, _ := s.red.At(p.Row, s.n) // bounds hold: pivots index red
		x[p.Col] = v
	}
	if s.kind == Unique {
		return x, nil, nil
	}

	// homogeneous basis over the coefficient columns only
	isPivot := make([]bool, s.n)
	for _, p := range s.pivots {
		isPivot[p.Col] = true
	}
	basis := make([]vector.Vector[T], 0, s.n-len(s.pivots))
	for f := 0; f < s.n; f++ {
		if isPivot[f] {
			continue
		}
		v := make(vector.Vector[T], s.n)
		v[f] = 1
		for _, p := range s.pivots {
			a, _ := s.red.At(p.Row, f)
			if a != 0 {
				v[p.Col] = -a // skip zeros so the basis never carries -0
			}
		}
		basis = append(basis, v)
	}
	return x, basis, nil
}
