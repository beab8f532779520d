// SPDX-License-Identifier: MIT
// Package vecset: the Set container and its analysis queries.

package vecset

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opNew            = "New"
	opMatrix         = "Matrix"
	opRank           = "Rank"
	opIndependent    = "Independent"
	opBasis          = "Basis"
	opOrthogonalized = "Orthogonalized"
)

// vecsetErrorf wraps err with an operation tag, preserving the cause for
// errors.Is/As. Call only with err != nil.
func vecsetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Orientation selects how Matrix assembles the set.
type Orientation uint8

const (
	// Columns puts one vector per matrix column (the conventional layout
	// for span and kernel reasoning).
	Columns Orientation = iota
	// Rows puts one vector per matrix row.
	Rows
)

// String renders the orientation for logs and test failures.
func (o Orientation) String() string {
	switch o {
	case Columns:
		return "Columns"
	case Rows:
		return "Rows"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Set is an immutable collection of equal-length vectors.
//
// The zero value is not usable; construct with New.
type Set[T scalar.Scalar] struct {
	orient Orientation
	vs     []vector.Vector[T]
	dim    int
}

// New builds a set over private clones of vs.
//
// Returns ErrEmptySet for no vectors, ErrBadOrientation for an unknown
// orientation, vector.ErrBadLength for zero-length vectors and
// vector.ErrDimensionMismatch when lengths differ.
func New[T scalar.Scalar](orient Orientation, vs ...vector.Vector[T]) (*Set[T], error) {
	if orient != Columns && orient != Rows {
		return nil, vecsetErrorf(opNew, ErrBadOrientation)
	}
	if len(vs) == 0 {
		return nil, vecsetErrorf(opNew, ErrEmptySet)
	}
	dim := vs[0].Len()
	if dim < 1 {
		return nil, vecsetErrorf(opNew, vector.ErrBadLength)
	}
	own := make([]vector.Vector[T], len(vs))
	for i, v := range vs {
		if v.Len() != dim {
			return nil, fmt.Errorf("%s: vector %d has length %d, want %d: %w",
				opNew, i, v.Len(), dim, vector.ErrDimensionMismatch)
		}
		own[i] = v.Clone()
	}
	return &Set[T]{orient: orient, vs: own, dim: dim}, nil
}

// Len returns the number of vectors in the set.
func (s *Set[T]) Len() int { return len(s.vs) }

// Dim returns the shared vector length.
func (s *Set[T]) Dim() int { return s.dim }

// Orientation returns the assembly orientation chosen at construction.
func (s *Set[T]) Orientation() Orientation { return s.orient }

// Vectors returns deep copies of the stored vectors in input order.
func (s *Set[T]) Vectors() []vector.Vector[T] {
	out := make([]vector.Vector[T], len(s.vs))
	for i, v := range s.vs {
		out[i] = v.Clone()
	}
	return out
}

// Matrix assembles the set per its orientation: dim x len for Columns,
// len x dim for Rows.
func (s *Set[T]) Matrix() (*matrix.Dense[T], error) {
	if s.orient == Rows {
		rows := make([][]T, len(s.vs))
		for i, v := range s.vs {
			rows[i] = v.Clone()
		}
		m, err := matrix.NewFromRows(rows)
		if err != nil {
			return nil, vecsetErrorf(opMatrix, err)
		}
		return m, nil
	}
	return s.columns(opMatrix)
}

// columns assembles the dim x len matrix with one vector per column.
func (s *Set[T]) columns(tag string) (*matrix.Dense[T], error) {
	m, err := matrix.NewDense[T](s.dim, len(s.vs))
	if err != nil {
		return nil, vecsetErrorf(tag, err)
	}
	for j, v := range s.vs {
		for i := 0; i < s.dim; i++ {
			_ = m.Set(i, j, v[i]) // bounds hold by construction
		}
	}
	return m, nil
}

// Rank returns the dimension of the span. The result does not depend on
// the orientation: row rank equals column rank.
func (s *Set[T]) Rank(eps T) (int, error) {
	m, err := s.columns(opRank)
	if err != nil {
		return 0, err
	}
	r, err := rref.Rank(m, eps)
	if err != nil {
		return 0, vecsetErrorf(opRank, err)
	}
	return r, nil
}

// Independent reports whether the vectors are linearly independent, that
// is, whether the rank equals the set size.
func (s *Set[T]) Independent(eps T) (bool, error) {
	r, err := s.Rank(eps)
	if err != nil {
		return false, vecsetErrorf(opIndependent, err)
	}
	return r == len(s.vs), nil
}

// Basis returns a maximal independent subset of the ORIGINAL vectors, in
// input order: the pivot columns of the columns-assembly pick the winners.
func (s *Set[T]) Basis(eps T) ([]vector.Vector[T], error) {
	m, err := s.columns(opBasis)
	if err != nil {
		return nil, err
	}
	e, err := rref.New(m)
	if err != nil {
		return nil, vecsetErrorf(opBasis, err)
	}
	if err = e.ToREF(eps); err != nil {
		return nil, vecsetErrorf(opBasis, err)
	}
	cols := e.PivotCols()
	basis := make([]vector.Vector[T], 0, len(cols))
	for _, c := range cols {
		basis = append(basis, s.vs[c].Clone())
	}
	return basis, nil
}

// Orthogonalized runs Gram-Schmidt over the input order.
//
// Implementation:
//   - Stage 1: subtract from each vector its projection onto every survivor
//     collected so far (projection uses q·v/q·q, so survivors may stay
//     unnormalized).
//   - Stage 2: a residual with norm < eps is numerically dependent on its
//     predecessors and is DROPPED, never zero-padded.
//   - Stage 3: when normalize is true, survivors are scaled to unit length.
//
// Behavior highlights:
//   - len(result) equals the rank of the set at this epsilon.
//   - Survivors are pairwise orthogonal within rounding.
//
// Inputs:
//   - eps: near-zero threshold; must be positive.
//   - normalize: scale survivors to unit length.
//
// Returns:
//   - []vector.Vector[T]: the orthogonal(ized) survivors, input order.
//   - error: ErrBadEpsilon.
//
// Determinism: fixed input order; no pivoting.
// Complexity: Time O(k²·dim) for k vectors, Space O(k·dim).
func (s *Set[T]) Orthogonalized(eps T, normalize bool) ([]vector.Vector[T], error) {
	if eps <= 0 {
		return nil, vecsetErrorf(opOrthogonalized, ErrBadEpsilon)
	}
	out := make([]vector.Vector[T], 0, len(s.vs))
	for _, v := range s.vs {
		u := v.Clone()
		for _, q := range out {
			qu, _ := q.Dot(u) // lengths agree by construction
			qq, _ := q.Dot(q)
			u, _ = u.Sub(q.Scale(qu / qq))
		}
		if u.Norm() < eps {
			continue // dependent on its predecessors: drop
		}
		if normalize {
			n, err := u.Normalized(eps)
			if err != nil {
				return nil, vecsetErrorf(opOrthogonalized, err)
			}
			u = n
		}
		out = append(out, u)
	}
	return out, nil
}
