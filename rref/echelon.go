// SPDX-License-Identifier: MIT
// Package rref: the Echelon engine. One file holds the whole lifecycle:
// construction, the REF sweep, the RREF refinement and the derived queries.
// Kernels use the container's row operations exclusively, so the engine sees
// the same near-zero policy the container documents.

package rref

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opNew    = "New"
	opReset  = "Reset"
	opToREF  = "ToREF"
	opToRREF = "ToRREF"
	opRank   = "Rank"
	opKernel = "Kernel"
)

// rrefErrorf wraps err with an operation tag, preserving the cause for
// errors.Is/As. Call only with err != nil.
func rrefErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New builds an engine over a private clone of m.
// Returns ErrNilMatrix when m is nil.
func New[T scalar.Scalar](m *matrix.Dense[T]) (*Echelon[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, rrefErrorf(opNew, err)
	}
	return &Echelon[T]{m: m.Clone(), stage: Unreduced}, nil
}

// Reset starts a fresh lifecycle over a clone of m: pivots are cleared and
// the stage returns to Unreduced. Returns ErrNilMatrix when m is nil.
func (e *Echelon[T]) Reset(m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return rrefErrorf(opReset, err)
	}
	e.m = m.Clone()
	e.pivots = nil
	e.stage = Unreduced
	return nil
}

// Stage reports how far this lifecycle has progressed.
func (e *Echelon[T]) Stage() Stage { return e.stage }

// Matrix returns a clone of the working matrix at its current stage.
func (e *Echelon[T]) Matrix() *matrix.Dense[T] { return e.m.Clone() }

// Pivots returns a copy of the accepted pivots in elimination order.
// Empty until the stage reaches REF.
func (e *Echelon[T]) Pivots() []Pivot {
	out := make([]Pivot, len(e.pivots))
	copy(out, e.pivots)
	return out
}

// PivotCols returns the pivot column indices in elimination order.
func (e *Echelon[T]) PivotCols() []int {
	out := make([]int, len(e.pivots))
	for i, p := range e.pivots {
		out[i] = p.Col
	}
	return out
}

// PivotRows returns the pivot row indices in elimination order.
func (e *Echelon[T]) PivotRows() []int {
	out := make([]int, len(e.pivots))
	for i, p := range e.pivots {
		out[i] = p.Row
	}
	return out
}

// ToREF brings the working matrix to row echelon form.
//
// Implementation:
//   - Stage 1: sweep columns left to right while pivot rows remain. For the
//     current column, pick the row at or below the pivot row with the largest
//     |value| (partial pivoting).
//   - Stage 2: a best candidate below eps means the column is numerically
//     empty: skip to the next column WITHOUT advancing the pivot row.
//   - Stage 3: swap the winner into the pivot row, record (pivotRow, col),
//     eliminate below with factor = -value/pivot (the container ignores
//     factors below eps), force each eliminated cell to exact zero, advance.
//
// Behavior highlights:
//   - Idempotent: at REF or RREF the call returns immediately.
//   - Pivot pairs are appended in order, so pivot ordinal == pivot row.
//   - Eliminated cells hold exact zeros, not rounding residue.
//
// Inputs:
//   - eps: near-zero threshold; must be positive.
//
// Returns:
//   - error: ErrBadEpsilon, or a container error (not expected after
//     construction-time validation) wrapped with opToREF.
//
// Determinism:
//   - Fixed column order; pivot ties keep the first (topmost) row.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(1) beyond the working copy.
//
// AI-Hints:
//   - Call Rank afterwards for free: it is len(Pivots()).
//   - Use Matrix() to inspect the echelon form; the engine never hands out
//     its internal storage.
func (e *Echelon[T]) ToREF(eps T) error {
	if eps <= 0 {
		return rrefErrorf(opToREF, ErrBadEpsilon)
	}
	if e.stage >= REF {
		return nil
	}
	rows, cols := e.m.Shape()
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		// partial pivot: largest |value| at or below the current pivot row
		best := pivotRow
		bestAbs := T(0)
		for r := pivotRow; r < rows; r++ {
			v, _ := e.m.At(r, col) // bounds hold by loop construction
			if a := scalar.Abs(v); a > bestAbs {
				best, bestAbs = r, a
			}
		}
		if bestAbs < eps {
			continue // column numerically empty below the pivot row
		}
		if err := e.m.ExchangeRows(pivotRow, best); err != nil {
			return rrefErrorf(opToREF, err)
		}
		e.pivots = append(e.pivots, Pivot{Row: pivotRow, Col: col})
		piv, _ := e.m.At(pivotRow, col)
		for r := pivotRow + 1; r < rows; r++ {
			v, _ := e.m.At(r, col)
			if err := e.m.AddScaledRow(r, pivotRow, -v/piv, eps); err != nil {
				return rrefErrorf(opToREF, err)
			}
			_ = e.m.Set(r, col, 0) // eliminated cell is exactly zero
		}
		pivotRow++
	}
	e.stage = REF
	return nil
}

// ToRREF brings the working matrix to reduced row echelon form.
//
// Implementation:
//   - Stage 1: auto-invoke ToREF when the lifecycle has not reached it.
//   - Stage 2: forward pass scales every pivot row by 1/pivot and pins the
//     pivot cell to exactly 1 (x·(1/x) can land one ulp off).
//   - Stage 3: backward pass from the LAST pivot to the first eliminates the
//     entries above each pivot and forces them to exact zero.
//   - Stage 4: final sweep snaps every |entry| < eps to exact zero.
//
// Behavior highlights:
//   - Idempotent at RREF.
//   - After return, every pivot column is a standard basis vector.
//
// Inputs:
//   - eps: near-zero threshold; must be positive.
//
// Returns:
//   - error: ErrBadEpsilon, or a container error wrapped with opToRREF
//     (ScaleRow refuses 1/pivot only when the pivot magnitude exceeds 1/eps).
//
// Determinism: fixed pivot order in both passes.
// Complexity: Time O(r·c·min(r,c)), Space O(1) beyond the working copy.
func (e *Echelon[T]) ToRREF(eps T) error {
	if eps <= 0 {
		return rrefErrorf(opToRREF, ErrBadEpsilon)
	}
	if e.stage == RREF {
		return nil
	}
	if e.stage < REF {
		if err := e.ToREF(eps); err != nil {
			return err
		}
	}
	// forward: leading 1 in every pivot row
	for _, p := range e.pivots {
		piv, _ := e.m.At(p.Row, p.Col)
		if err := e.m.ScaleRow(p.Row, 1/piv, eps); err != nil {
			return rrefErrorf(opToRREF, err)
		}
		_ = e.m.Set(p.Row, p.Col, 1)
	}
	// backward: clear above each pivot, last pivot first
	for i := len(e.pivots) - 1; i >= 0; i-- {
		p := e.pivots[i]
		for r := p.Row - 1; r >= 0; r-- {
			v, _ := e.m.At(r, p.Col)
			if err := e.m.AddScaledRow(r, p.Row, -v, eps); err != nil {
				return rrefErrorf(opToRREF, err)
			}
			_ = e.m.Set(r, p.Col, 0)
		}
	}
	// final snap: elimination residue below eps becomes exact zero
	rows, cols := e.m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := e.m.At(i, j)
			if scalar.IsZero(v, eps) {
				_ = e.m.Set(i, j, 0)
			}
		}
	}
	e.stage = RREF
	return nil
}

// Rank returns the number of accepted pivots, bringing the lifecycle to at
// least REF first. Rank deficiency is data, never an error.
func (e *Echelon[T]) Rank(eps T) (int, error) {
	if e.stage < REF {
		if err := e.ToREF(eps); err != nil {
			return 0, rrefErrorf(opRank, err)
		}
	}
	return len(e.pivots), nil
}

// Kernel returns a basis of the null space, bringing the lifecycle to RREF
// first.
//
// Implementation:
//   - Stage 1: auto-invoke ToRREF.
//   - Stage 2: every column without a pivot is free, ascending order. For
//     free column f the basis vector v has v[f] = 1 and, for each pivot
//     (row, col), v[col] = -rref[row][f]; all other entries stay zero.
//
// Behavior highlights:
//   - Full column rank yields an empty (nil) basis, not an error.
//   - Basis vectors are fresh; mutating them never touches engine state.
//   - len(basis) == Cols - rank (rank-nullity).
//
// Inputs:
//   - eps: near-zero threshold; must be positive.
//
// Returns:
//   - []vector.Vector[T]: one basis vector per free column.
//   - error: ErrBadEpsilon or a wrapped container error.
//
// Determinism: basis order follows ascending free-column index.
// Complexity: Time O(c·rank) beyond the reduction, Space O(c·nullity).
func (e *Echelon[T]) Kernel(eps T) ([]vector.Vector[T], error) {
	if eps <= 0 {
		return nil, rrefErrorf(opKernel, ErrBadEpsilon)
	}
	if e.stage < RREF {
		if err := e.ToRREF(eps); err != nil {
			return nil, rrefErrorf(opKernel, err)
		}
	}
	_, cols := e.m.Shape()
	isPivot := make([]bool, cols)
	for _, p := range e.pivots {
		isPivot[p.Col] = true
	}
	var basis []vector.Vector[T]
	for f := 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		v := make(vector.Vector[T], cols)
		v[f] = 1
		for _, p := range e.pivots {
			a, _ := e.m.At(p.Row, f)
			if a != 0 {
				v[p.Col] = -a // skip zeros so the basis never carries -0
			}
		}
		basis = append(basis, v)
	}
	return basis, nil
}
