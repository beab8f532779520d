// SPDX-License-Identifier: MIT
// Package blockmatrix: the grid container, constructors and block access.

package blockmatrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opNewIdentity = "NewIdentity"
	opBlock       = "Block"
	opSetBlock    = "SetBlock"
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opNeg         = "Neg"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opFlatten     = "Flatten"
	opExchange    = "ExchangeBlockRows"
	opScaleRow    = "ScaleBlockRow"
	opAddScaled   = "AddScaledBlockRow"
)

// blockErrorf wraps err with an operation tag, preserving the cause for
// errors.Is/As. Call only with err != nil.
func blockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BlockMatrix is a blockRows x blockCols grid of size x size dense blocks,
// stored row-major. Blocks are owned by the grid; Block hands out clones.
//
// The zero value is not usable; construct with New or NewIdentity.
type BlockMatrix[T scalar.Scalar] struct {
	grid []*matrix.Dense[T]
	br   int // grid rows
	bc   int // grid cols
	bs   int // block size (blocks are square)
}

// New builds a blockRows x blockCols grid of zero blocks of the given size.
// Returns ErrBadShape when any dimension is below one.
func New[T scalar.Scalar](blockRows, blockCols, blockSize int) (*BlockMatrix[T], error) {
	if blockRows < 1 || blockCols < 1 || blockSize < 1 {
		return nil, fmt.Errorf("%s: %dx%d blocks of size %d: %w",
			opNew, blockRows, blockCols, blockSize, matrix.ErrBadShape)
	}
	grid := make([]*matrix.Dense[T], blockRows*blockCols)
	for i := range grid {
		z, err := matrix.NewDense[T](blockSize, blockSize)
		if err != nil {
			return nil, blockErrorf(opNew, err)
		}
		grid[i] = z
	}
	return &BlockMatrix[T]{grid: grid, br: blockRows, bc: blockCols, bs: blockSize}, nil
}

// NewIdentity builds a square blockDim x blockDim grid with identity blocks
// on the diagonal and zero blocks elsewhere. Flattened, it is the identity
// of order blockDim*blockSize.
func NewIdentity[T scalar.Scalar](blockDim, blockSize int) (*BlockMatrix[T], error) {
	b, err := New[T](blockDim, blockDim, blockSize)
	if err != nil {
		return nil, blockErrorf(opNewIdentity, err)
	}
	for i := 0; i < blockDim; i++ {
		id, err := matrix.NewIdentity[T](blockSize)
		if err != nil {
			return nil, blockErrorf(opNewIdentity, err)
		}
		b.grid[i*blockDim+i] = id
	}
	return b, nil
}

// BlockRows returns the number of block rows.
func (b *BlockMatrix[T]) BlockRows() int { return b.br }

// BlockCols returns the number of block columns.
func (b *BlockMatrix[T]) BlockCols() int { return b.bc }

// BlockSize returns the shared block dimension.
func (b *BlockMatrix[T]) BlockSize() int { return b.bs }

// Shape returns the dense dimensions of the flattened matrix.
func (b *BlockMatrix[T]) Shape() (rows, cols int) {
	return b.br * b.bs, b.bc * b.bs
}

// index returns the flat grid offset or ErrOutOfRange.
func (b *BlockMatrix[T]) index(i, j int) (int, error) {
	if i < 0 || i >= b.br || j < 0 || j >= b.bc {
		return 0, fmt.Errorf("block (%d,%d) outside %dx%d grid: %w",
			i, j, b.br, b.bc, matrix.ErrOutOfRange)
	}
	return i*b.bc + j, nil
}

// Block returns a clone of the block at grid position (i, j).
func (b *BlockMatrix[T]) Block(i, j int) (*matrix.Dense[T], error) {
	k, err := b.index(i, j)
	if err != nil {
		return nil, blockErrorf(opBlock, err)
	}
	return b.grid[k].Clone(), nil
}

// SetBlock stores a clone of m at grid position (i, j).
// Returns ErrNilMatrix for nil m and ErrDimensionMismatch when m is not
// blockSize x blockSize.
func (b *BlockMatrix[T]) SetBlock(i, j int, m *matrix.Dense[T]) error {
	k, err := b.index(i, j)
	if err != nil {
		return blockErrorf(opSetBlock, err)
	}
	if err = matrix.ValidateNotNil(m); err != nil {
		return blockErrorf(opSetBlock, err)
	}
	if m.Rows() != b.bs || m.Cols() != b.bs {
		return fmt.Errorf("%s: block is %dx%d, want %dx%d: %w",
			opSetBlock, m.Rows(), m.Cols(), b.bs, b.bs, matrix.ErrDimensionMismatch)
	}
	b.grid[k] = m.Clone()
	return nil
}

// Clone returns a deep copy of the grid.
func (b *BlockMatrix[T]) Clone() *BlockMatrix[T] {
	grid := make([]*matrix.Dense[T], len(b.grid))
	for i, blk := range b.grid {
		grid[i] = blk.Clone()
	}
	return &BlockMatrix[T]{grid: grid, br: b.br, bc: b.bc, bs: b.bs}
}

// sameLayout reports whether two grids agree in every dimension.
func sameLayout[T scalar.Scalar](a, b *BlockMatrix[T]) bool {
	return a.br == b.br && a.bc == b.bc && a.bs == b.bs
}
