// SPDX-License-Identifier: MIT
// Package eigen: option and result types.

package eigen

import (
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

// DefaultMaxIter is the QR iteration budget used by DefaultOptions. It is
// generous enough for well-separated real spectra at double precision.
const DefaultMaxIter = 1000

// Options configures Decompose.
//
// Fields:
//   - MaxIter — exact number of QR rounds to run. The budget is always spent
//     in full; there is no convergence shortcut. Must be at least 1.
//   - Eps — near-zero threshold used by the QR factorization and by the
//     kernel sweeps that recover eigenvectors. Must be positive.
type Options[T scalar.Scalar] struct {
	MaxIter int
	Eps     T
}

// DefaultOptions returns the production defaults: a 1000-round budget and
// the shared DefaultEpsilon threshold.
func DefaultOptions[T scalar.Scalar]() Options[T] {
	return Options[T]{MaxIter: DefaultMaxIter, Eps: scalar.DefaultEpsilon}
}

// Decomposition holds the outcome of one Decompose call.
//
// Values lists the diagonal of the final iterate in diagonal order, repeats
// included. Vectors holds unit eigenvectors grouped per value, in the same
// order; a value whose kernel came back empty contributes one zero vector,
// so len(Vectors) >= len(Values) always holds.
type Decomposition[T scalar.Scalar] struct {
	Values  []T
	Vectors []vector.Vector[T]
}
