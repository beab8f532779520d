// SPDX-License-Identifier: MIT
// Package eigen: the QR iteration and eigenvector recovery.

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Operation name constant for unified error wrapping.
const opDecompose = "Decompose"

// eigenErrorf wraps err with an operation tag, preserving the cause for
// errors.Is/As. Call only with err != nil.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decompose estimates the real eigen-decomposition of a square matrix.
//
// Implementation:
//   - Stage 1: validate the input shape and the options.
//   - Stage 2: run exactly opts.MaxIter rounds of A ← R·Q where A = Q·R is
//     the Gram-Schmidt factorization. Every round is a similarity transform,
//     so the spectrum never changes; the diagonal drifts toward it.
//   - Stage 3: read Values off the diagonal of the final iterate, in place,
//     unsorted and with repeats.
//   - Stage 4: for each value λ, recover eigenvectors as the kernel of
//     (A - λI) built from the ORIGINAL matrix, so iteration error never
//     contaminates the vectors. Kernel vectors are normalized to unit
//     length; a degenerate (sub-epsilon norm) vector is kept unnormalized.
//     An empty kernel contributes one zero placeholder vector.
//
// Behavior highlights:
//   - The budget is spent in full: no residual checks, no early exit. Two
//     calls with equal inputs produce identical output.
//   - Complex eigenvalue pairs never converge on the diagonal; they surface
//     as off-spectrum values with zero placeholder vectors.
//   - Repeated eigenvalues repeat in Values, and each occurrence carries the
//     full eigenspace basis, so Vectors may be longer than Values.
//
// Inputs:
//   - a: square matrix to decompose; it is never mutated.
//   - opts: iteration budget and near-zero threshold, see Options.
//
// Returns:
//   - *Decomposition[T]: values and grouped unit eigenvectors.
//   - error: ErrNilMatrix, ErrNonSquare, ErrBadMaxIter or ErrBadEpsilon.
//
// Determinism:
//   - Fixed round count and fixed kernel ordering; output is reproducible
//     bit for bit.
//
// Complexity:
//   - Time O(MaxIter·n³ + n·n³), Space O(n²).
//
// AI-Hints:
//   - Prefer symmetric inputs when you need trustworthy values: their
//     spectra are real and the iteration is known to converge.
//   - A zero vector in Vectors is a signal, not a bug: the matching value
//     did not admit a kernel at opts.Eps.
func Decompose[T scalar.Scalar](a *matrix.Dense[T], opts Options[T]) (*Decomposition[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	if opts.MaxIter < 1 {
		return nil, fmt.Errorf("%s: MaxIter %d: %w", opDecompose, opts.MaxIter, ErrBadMaxIter)
	}
	if opts.Eps <= 0 {
		return nil, eigenErrorf(opDecompose, ErrBadEpsilon)
	}

	iter := a.Clone()
	for k := 0; k < opts.MaxIter; k++ {
		q, r, err := matrix.QR(iter, opts.Eps)
		if err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		if iter, err = matrix.Mul(r, q); err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
	}

	dec := &Decomposition[T]{Values: iter.Diagonal()}
	n := a.Rows()
	for _, lam := range dec.Values {
		shifted := a.Clone()
		for i := 0; i < n; i++ {
			d, _ := shifted.At(i, i) // diagonal of a square matrix
			_ = shifted.Set(i, i, d-lam)
		}
		kern, err := rref.KernelOf(shifted, opts.Eps)
		if err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		if len(kern) == 0 {
			// no kernel at this epsilon: placeholder, not an invention
			dec.Vectors = append(dec.Vectors, make(vector.Vector[T], n))
			continue
		}
		for _, v := range kern {
			u, nerr := v.Normalized(opts.Eps)
			if nerr != nil {
				if !errors.Is(nerr, vector.ErrZeroNorm) {
					return nil, eigenErrorf(opDecompose, nerr)
				}
				u = v // degenerate direction: keep it unscaled
			}
			dec.Vectors = append(dec.Vectors, u)
		}
	}
	return dec, nil
}
