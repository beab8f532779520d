// Package rref reduces dense matrices to row echelon form (REF) and reduced
// row echelon form (RREF) with explicit pivot bookkeeping, and derives rank,
// kernel bases and inverses from the reduction.
//
// 🚀 What is RREF?
//
//	Gaussian elimination rewrites a matrix with elementary row operations
//	until every pivot is the only nonzero entry of its column. The pivot
//	positions recorded along the way answer most structural questions:
//	  • rank and nullity
//	  • kernel (null-space) bases
//	  • solvability classification of linear systems
//	  • invertibility via [A|I] sweeps
//
// ✨ Key features:
//   - Echelon engine owning a private copy of the input (value-copy ownership)
//   - partial pivoting: the largest |value| in the column wins
//   - ordered (row, col) pivot pairs, one per accepted pivot
//   - monotonic stage tracking: Unreduced → REF → RREF, auto-upgraded on demand
//   - caller-supplied epsilon; entries with |x| < eps act as exact zeros
//   - one-shot helpers: Rank, KernelOf, Inverse
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinalg/rref"
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
//	e, _ := rref.New(m)
//	_ = e.ToRREF(rref.DefaultEpsilon)
//	rank, _ := e.Rank(rref.DefaultEpsilon)   // 1
//	basis, _ := e.Kernel(rref.DefaultEpsilon) // {(-2, 1)}
//
// Performance:
//
//   - Time:   O(r·c·min(r,c)) for the sweep
//   - Memory: O(r·c) for the private working copy
//
// See example_test.go for end-to-end scenarios.
package rref
