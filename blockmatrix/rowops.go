// SPDX-License-Identifier: MIT
// Package blockmatrix: block row operations, the grid-level mirror of the
// scalar row operations in package matrix.

package blockmatrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// ExchangeBlockRows swaps block rows i and j in place. Swapping a row with
// itself is a no-op. Returns ErrOutOfRange when either index is invalid.
func (b *BlockMatrix[T]) ExchangeBlockRows(i, j int) error {
	if i < 0 || i >= b.br || j < 0 || j >= b.br {
		return fmt.Errorf("%s(%d,%d): %w", opExchange, i, j, matrix.ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := 0; k < b.bc; k++ {
		b.grid[i*b.bc+k], b.grid[j*b.bc+k] = b.grid[j*b.bc+k], b.grid[i*b.bc+k]
	}
	return nil
}

// validateFactor checks a block row factor: non-nil and blockSize-square.
func (b *BlockMatrix[T]) validateFactor(tag string, m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return blockErrorf(tag, err)
	}
	if m.Rows() != b.bs || m.Cols() != b.bs {
		return fmt.Errorf("%s: factor is %dx%d, want %dx%d: %w",
			tag, m.Rows(), m.Cols(), b.bs, b.bs, matrix.ErrDimensionMismatch)
	}
	return nil
}

// ScaleBlockRow left-multiplies every block of row i by m in place.
//
// Behavior highlights:
//   - m must be nonsingular: |det(m)| < eps is refused with
//     ErrSingularBlock, the grid analog of scaling a scalar row by zero.
//   - Left multiplication keeps the operation consistent with viewing the
//     block row as a stack of tall column slices.
//
// Returns ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch or
// ErrSingularBlock.
func (b *BlockMatrix[T]) ScaleBlockRow(i int, m *matrix.Dense[T], eps T) error {
	if i < 0 || i >= b.br {
		return fmt.Errorf("%s(%d): %w", opScaleRow, i, matrix.ErrOutOfRange)
	}
	if err := b.validateFactor(opScaleRow, m); err != nil {
		return err
	}
	det, err := matrix.Determinant(m, eps)
	if err != nil {
		return blockErrorf(opScaleRow, err)
	}
	if scalar.IsZero(det, eps) {
		return fmt.Errorf("%s(%d): det %g: %w", opScaleRow, i, float64(det), ErrSingularBlock)
	}
	for k := 0; k < b.bc; k++ {
		prod, err := matrix.Mul(m, b.grid[i*b.bc+k])
		if err != nil {
			return blockErrorf(opScaleRow, err)
		}
		b.grid[i*b.bc+k] = prod
	}
	return nil
}

// AddScaledBlockRow adds m * (block row src) to block row dst in place.
//
// Behavior highlights:
//   - A factor that is zero within eps is a silent no-op, mirroring the
//     scalar AddScaledRow policy.
//   - Singular (but nonzero) factors are allowed; only the shape is checked.
//   - dst == src is rejected: the operation always combines distinct rows.
//
// Returns ErrOutOfRange, ErrNilMatrix or ErrDimensionMismatch.
func (b *BlockMatrix[T]) AddScaledBlockRow(dst, src int, m *matrix.Dense[T], eps T) error {
	if dst < 0 || dst >= b.br || src < 0 || src >= b.br || dst == src {
		return fmt.Errorf("%s(%d,%d): %w", opAddScaled, dst, src, matrix.ErrOutOfRange)
	}
	if err := b.validateFactor(opAddScaled, m); err != nil {
		return err
	}
	if isZeroBlock(m, eps) {
		return nil
	}
	for k := 0; k < b.bc; k++ {
		prod, err := matrix.Mul(m, b.grid[src*b.bc+k])
		if err != nil {
			return blockErrorf(opAddScaled, err)
		}
		sum, err := matrix.Add(b.grid[dst*b.bc+k], prod)
		if err != nil {
			return blockErrorf(opAddScaled, err)
		}
		b.grid[dst*b.bc+k] = sum
	}
	return nil
}

// isZeroBlock reports whether every entry of m satisfies |x| < eps.
func isZeroBlock[T scalar.Scalar](m *matrix.Dense[T], eps T) bool {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if !scalar.IsZero(v, eps) {
				return false
			}
		}
	}
	return true
}
