// SPDX-License-Identifier: MIT
// Package rref: one-shot helpers over the Echelon engine. Consumers that
// need a single figure (rank, kernel, inverse) call these instead of keeping
// an engine around; each builds a throwaway engine internally.

package rref

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

const opInverse = "Inverse"

// Rank returns the rank of m within eps.
// Returns ErrNilMatrix or ErrBadEpsilon.
func Rank[T scalar.Scalar](m *matrix.Dense[T], eps T) (int, error) {
	e, err := New(m)
	if err != nil {
		return 0, err
	}
	return e.Rank(eps)
}

// KernelOf returns a null-space basis of m within eps. Full column rank
// yields an empty basis.
func KernelOf[T scalar.Scalar](m *matrix.Dense[T], eps T) ([]vector.Vector[T], error) {
	e, err := New(m)
	if err != nil {
		return nil, err
	}
	return e.Kernel(eps)
}

// Inverse computes m⁻¹ by reducing the augmented sweep [A|I] to RREF.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); build [A|I] and reduce it.
//   - Stage 2: count pivots landing in the coefficient block. [A|I] always
//     reaches full row rank thanks to the identity block, so invertibility
//     is decided by WHERE the pivots sit: n leading pivots mean the left
//     block reduced to I and the right block is exactly A⁻¹.
//
// Inputs:
//   - m: square matrix (non-nil).
//   - eps: near-zero threshold; must be positive.
//
// Returns:
//   - *matrix.Dense[T]: fresh n x n inverse.
//   - error: ErrNilMatrix/ErrNonSquare (container), ErrBadEpsilon, or
//     ErrSingular when fewer than n pivots sit in the coefficient block.
//
// Complexity: Time O(n³), Space O(n²) for the augmented sweep.
func Inverse[T scalar.Scalar](m *matrix.Dense[T], eps T) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	n := m.Rows()
	id, err := matrix.NewIdentity[T](n)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(m, id)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	e, err := New(aug)
	if err != nil {
		return nil, err
	}
	if err = e.ToRREF(eps); err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	leading := 0
	for _, p := range e.pivots {
		if p.Col < n {
			leading++
		}
	}
	if leading < n {
		return nil, rrefErrorf(opInverse, ErrSingular)
	}
	return e.m.SubMatrix(0, n, n, n)
}
