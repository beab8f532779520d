// SPDX-License-Identifier: MIT
// Package matrix: central type declarations.
// The container is deliberately concrete: one row-major Dense parameterized
// over the scalar kind. Reduction, solver and eigen layers receive copies and
// never share storage with callers (value-copy ownership).

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Dense is a dense matrix in row-major order: element (i, j) lives at
// data[i*c+j]. Shapes are immutable after construction; contents mutate only
// through Set and the elementary row operations.
type Dense[T scalar.Scalar] struct {
	r, c int
	data []T
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols) in one call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }
