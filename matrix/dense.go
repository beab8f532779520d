// SPDX-License-Identifier: MIT
// Package matrix: Dense construction and element access.
// Constructors validate shapes before allocation; accessors are
// bounds-checked and return sentinels, never panic.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// denseErrorf wraps err with the accessor name and the offending coordinates.
// Keeps a stable "Method(i,j): underlying" shape for uniform reporting.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates a rows x cols zero matrix.
//
// Inputs:
//   - rows, cols: target shape; both must be >= 1.
//
// Returns:
//   - *Dense[T]: freshly allocated zero matrix.
//   - error: ErrBadShape when rows < 1 or cols < 1.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T scalar.Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewIdentity allocates the n x n identity matrix.
// Returns ErrBadShape when n < 1.
func NewIdentity[T scalar.Scalar](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// NewFromRows builds a matrix from row slices, copying every element.
//
// Returns:
//   - ErrBadShape when rows is empty or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first.
func NewFromRows[T scalar.Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrBadShape)
	}
	c := len(rows[0])
	m, err := NewDense[T](len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w",
				i, len(row), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// NewFromSlice builds a rows x cols matrix from row-major data, copying it.
// Returns ErrBadShape when the shape is invalid or len(data) != rows*cols.
func NewFromSlice[T scalar.Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows >= 1 && cols >= 1 && len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromSlice: have %d elements, want %d: %w",
			len(data), rows*cols, ErrBadShape)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	copy(m.data, data)
	return m, nil
}

// indexOf maps (row, col) to the flat offset, bounds-checked.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Returns ErrOutOfRange for indices outside the shape.
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf("At", row, col, err)
	}
	return m.data[idx], nil
}

// Set stores v at (row, col).
// Returns ErrOutOfRange for indices outside the shape.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Row returns a copy of row i.
// Returns ErrOutOfRange when i is outside [0, Rows).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Col returns a copy of column j.
// Returns ErrOutOfRange when j is outside [0, Cols).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// Diagonal returns a copy of the main diagonal (length min(r, c)).
func (m *Dense[T]) Diagonal() []T {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}
	return out
}

// String renders the matrix row per line for debugging output.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", float64(m.data[i*m.c+j]))
		}
		b.WriteString("]\n")
	}
	return b.String()
}
