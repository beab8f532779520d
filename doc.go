// Package lvlinalg is your in-memory playground for dense linear algebra —
// from generic vectors and matrices to row reduction, linear-system solving
// and QR-iteration eigen-decomposition.
//
// 🚀 What is lvlinalg?
//
//	A modern, generic, explicitly-tolerant library that brings together:
//		• Core containers: Vector[T] & Dense[T] over float32/float64
//		• Row operations: exchange, scale, add-scaled — all epsilon-guarded
//		• Reduction engine: REF/RREF with ordered pivot bookkeeping
//		• Derived queries: rank, kernel basis, Gauss–Jordan inverse
//		• Linear systems: unique / infinite / no-solution classification
//		• Eigen: fixed-budget QR iteration + kernel-based eigenvectors
//		• Vector sets: independence, basis extraction, Gram–Schmidt
//		• Block matrices: equal-size block grids with block row ops
//
// ✨ Why choose lvlinalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – value-copy ownership, sentinel errors, in-code docs
//   - Pure Go – no cgo, generics over ~float32 | ~float64
//   - Explicit numerics – every tolerance is a parameter, never a hidden global
//
// Under the hood, everything is organized under eight subpackages:
//
//	scalar/      — Scalar constraint, DefaultEpsilon, Abs/Sqrt/IsZero helpers
//	vector/      — dense Vector[T]: Add, Sub, Dot, Norm, Normalized
//	matrix/      — Dense[T] container, row ops, arithmetic, Determinant, QR
//	rref/        — Echelon engine: ToREF/ToRREF, pivots, Rank, Kernel, Inverse
//	linsys/      — System[T]: Solve, Kind, particular + homogeneous Solution
//	eigen/       — Decompose: QR iteration, Values, per-λ eigenvector kernels
//	vecset/      — Set[T]: Rank, Independent, Basis, Orthogonalized
//	blockmatrix/ — BlockMatrix[T]: block grid, Mul, Flatten, block row ops
//
// Quick ASCII example:
//
//	    ⎡1 2⎤  ToRREF  ⎡1 0⎤
//	    ⎣3 4⎦  ──────▶ ⎣0 1⎦
//
//	reduces a 2×2 matrix to the identity, recording pivots (0,0) and (1,1).
//
// Next up: LU with partial pivoting, condition-number estimates and beyond.
// Dive into the per-package docs for full examples and the numeric policy
// (epsilon thresholds, pivot pinning, exact-zero elimination).
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
