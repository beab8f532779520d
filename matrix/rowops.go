// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations and augmentation.
// These are the primitives Gaussian elimination is made of; the rref engine
// drives them and relies on the exact near-zero policy documented per op.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// ExchangeRows swaps rows i and j in place. Swapping a row with itself is a
// no-op. Returns ErrOutOfRange when either index is invalid.
func (m *Dense[T]) ExchangeRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("ExchangeRows(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
	return nil
}

// ScaleRow multiplies row i by factor in place.
//
// Behavior highlights:
//   - |factor| < eps is refused with ErrScaleFactor: a near-zero scale wipes
//     the row and silently drops rank, which no caller ever wants.
//   - Used by the engine to bring pivot rows to leading 1 (factor = 1/pivot).
//
// Returns ErrOutOfRange or ErrScaleFactor.
func (m *Dense[T]) ScaleRow(i int, factor, eps T) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("ScaleRow(%d): %w", i, ErrOutOfRange)
	}
	if scalar.IsZero(factor, eps) {
		return fmt.Errorf("ScaleRow(%d): factor %g: %w", i, float64(factor), ErrScaleFactor)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= factor
	}
	return nil
}

// AddScaledRow adds factor * row src to row dst in place.
//
// Behavior highlights:
//   - |factor| < eps is a silent no-op: elimination factors this small are
//     numeric noise and applying them only spreads rounding error.
//   - dst == src is rejected; elimination always combines two distinct rows.
//
// Returns ErrOutOfRange when an index is invalid or dst == src.
func (m *Dense[T]) AddScaledRow(dst, src int, factor, eps T) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r || dst == src {
		return fmt.Errorf("AddScaledRow(%d,%d): %w", dst, src, ErrOutOfRange)
	}
	if scalar.IsZero(factor, eps) {
		return nil
	}
	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for k := range d {
		d[k] += factor * s[k]
	}
	return nil
}

// Augment returns the column concatenation [a | b] as a fresh matrix.
// Returns ErrNilMatrix or ErrDimensionMismatch when row counts differ.
func Augment[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Augment: %w", ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("Augment: %d vs %d rows: %w", a.r, b.r, ErrDimensionMismatch)
	}
	out, err := NewDense[T](a.r, a.c+b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*out.c:], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*out.c+a.c:], b.data[i*b.c:(i+1)*b.c])
	}
	return out, nil
}

// SubMatrix returns a copy of the rectangle [r0, r0+rows) x [c0, c0+cols).
// Returns ErrBadShape for empty extents and ErrOutOfRange when the rectangle
// leaves the receiver.
func (m *Dense[T]) SubMatrix(r0, c0, rows, cols int) (*Dense[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("SubMatrix: %dx%d: %w", rows, cols, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("SubMatrix(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrOutOfRange)
	}
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+cols])
	}
	return out, nil
}
