// SPDX-License-Identifier: MIT
// Package blockmatrix: grid-level arithmetic, flattening and comparison.

package blockmatrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// combine applies op pairwise over two layout-identical grids.
func combine[T scalar.Scalar](a, b *BlockMatrix[T], tag string,
	op func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error)) (*BlockMatrix[T], error) {
	if a == nil || b == nil {
		return nil, blockErrorf(tag, matrix.ErrNilMatrix)
	}
	if !sameLayout(a, b) {
		return nil, fmt.Errorf("%s: %dx%d/%d vs %dx%d/%d: %w", tag,
			a.br, a.bc, a.bs, b.br, b.bc, b.bs, matrix.ErrDimensionMismatch)
	}
	out := &BlockMatrix[T]{grid: make([]*matrix.Dense[T], len(a.grid)), br: a.br, bc: a.bc, bs: a.bs}
	for i := range a.grid {
		blk, err := op(a.grid[i], b.grid[i])
		if err != nil {
			return nil, blockErrorf(tag, err)
		}
		out.grid[i] = blk
	}
	return out, nil
}

// Add returns a + b blockwise.
// Returns ErrNilMatrix or ErrDimensionMismatch on layout disagreement.
func Add[T scalar.Scalar](a, b *BlockMatrix[T]) (*BlockMatrix[T], error) {
	return combine(a, b, opAdd, matrix.Add[T])
}

// Sub returns a - b blockwise.
func Sub[T scalar.Scalar](a, b *BlockMatrix[T]) (*BlockMatrix[T], error) {
	return combine(a, b, opSub, matrix.Sub[T])
}

// Scale returns alpha * b blockwise.
func Scale[T scalar.Scalar](b *BlockMatrix[T], alpha T) (*BlockMatrix[T], error) {
	if b == nil {
		return nil, blockErrorf(opScale, matrix.ErrNilMatrix)
	}
	out := &BlockMatrix[T]{grid: make([]*matrix.Dense[T], len(b.grid)), br: b.br, bc: b.bc, bs: b.bs}
	for i, blk := range b.grid {
		s, err := matrix.Scale(blk, alpha)
		if err != nil {
			return nil, blockErrorf(opScale, err)
		}
		out.grid[i] = s
	}
	return out, nil
}

// Neg returns -b blockwise.
func Neg[T scalar.Scalar](b *BlockMatrix[T]) (*BlockMatrix[T], error) {
	out, err := Scale(b, -1)
	if err != nil {
		return nil, blockErrorf(opNeg, err)
	}
	return out, nil
}

// Mul returns the block product a * b.
//
// The grids multiply like matrices of matrices: out[i][j] accumulates
// a[i][k] * b[k][j] over k. Grid shapes must chain (a.BlockCols ==
// b.BlockRows) and block sizes must agree.
//
// Complexity: O(br·bc·inner·bs³).
func Mul[T scalar.Scalar](a, b *BlockMatrix[T]) (*BlockMatrix[T], error) {
	if a == nil || b == nil {
		return nil, blockErrorf(opMul, matrix.ErrNilMatrix)
	}
	if a.bc != b.br || a.bs != b.bs {
		return nil, fmt.Errorf("%s: %dx%d/%d by %dx%d/%d: %w", opMul,
			a.br, a.bc, a.bs, b.br, b.bc, b.bs, matrix.ErrDimensionMismatch)
	}
	out, err := New[T](a.br, b.bc, a.bs)
	if err != nil {
		return nil, blockErrorf(opMul, err)
	}
	for i := 0; i < a.br; i++ {
		for k := 0; k < a.bc; k++ {
			left := a.grid[i*a.bc+k]
			for j := 0; j < b.bc; j++ {
				prod, err := matrix.Mul(left, b.grid[k*b.bc+j])
				if err != nil {
					return nil, blockErrorf(opMul, err)
				}
				sum, err := matrix.Add(out.grid[i*out.bc+j], prod)
				if err != nil {
					return nil, blockErrorf(opMul, err)
				}
				out.grid[i*out.bc+j] = sum
			}
		}
	}
	return out, nil
}

// Transpose returns the grid transpose with every block transposed, so the
// result flattens to the dense transpose of the flattened input.
func Transpose[T scalar.Scalar](b *BlockMatrix[T]) (*BlockMatrix[T], error) {
	if b == nil {
		return nil, blockErrorf(opTranspose, matrix.ErrNilMatrix)
	}
	out := &BlockMatrix[T]{grid: make([]*matrix.Dense[T], len(b.grid)), br: b.bc, bc: b.br, bs: b.bs}
	for i := 0; i < b.br; i++ {
		for j := 0; j < b.bc; j++ {
			t, err := matrix.Transpose(b.grid[i*b.bc+j])
			if err != nil {
				return nil, blockErrorf(opTranspose, err)
			}
			out.grid[j*out.bc+i] = t
		}
	}
	return out, nil
}

// Flatten expands the grid into one dense (br*bs) x (bc*bs) matrix.
func (b *BlockMatrix[T]) Flatten() (*matrix.Dense[T], error) {
	rows, cols := b.Shape()
	out, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, blockErrorf(opFlatten, err)
	}
	for i := 0; i < b.br; i++ {
		for j := 0; j < b.bc; j++ {
			blk := b.grid[i*b.bc+j]
			for r := 0; r < b.bs; r++ {
				for c := 0; c < b.bs; c++ {
					v, _ := blk.At(r, c) // bounds hold by construction
					_ = out.Set(i*b.bs+r, j*b.bs+c, v)
				}
			}
		}
	}
	return out, nil
}

// Equal reports whether a and b share a layout and agree blockwise within
// eps. Nil operands are equal only to nil.
func Equal[T scalar.Scalar](a, b *BlockMatrix[T], eps T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameLayout(a, b) {
		return false
	}
	for i := range a.grid {
		if !matrix.Equal(a.grid[i], b.grid[i], eps) {
			return false
		}
	}
	return true
}
