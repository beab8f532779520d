// Package linsys solves dense linear systems A·x = b by Gauss-Jordan
// elimination and classifies them before handing out any numbers.
//
// 🚀 What does the solver do?
//
//	The augmented matrix [A|b] is reduced to RREF once; the recorded pivots
//	then tell the whole story:
//	  • a pivot in the b column  → the system is inconsistent (NoSolution)
//	  • one pivot per unknown    → exactly one solution (Unique)
//	  • fewer pivots than unknowns → a solution family (Infinite)
//
// ✨ Key features:
//   - classification first: Solution() refuses to fabricate numbers for
//     inconsistent systems (ErrNoSolution) or unsolved ones (ErrNotSolved)
//   - Unique systems return the solution vector read straight off the RREF
//   - Infinite systems return a particular solution (free unknowns pinned to
//     zero) plus a homogeneous basis, one vector per free unknown
//   - value-copy ownership: the system clones its inputs and returns fresh
//     vectors, so callers can mutate anything safely
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinalg/linsys"
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 1}})
//	b, _ := matrix.NewFromRows([][]float64{{5}, {3}})
//	sys, _ := linsys.NewSystem(a, b)
//	kind, _ := sys.Solve(linsys.DefaultEpsilon) // Unique
//	x, _, _ := sys.Solution()                   // [2 1]
//	_ = kind
//
// Performance:
//
//   - Time:   O(r·(n+1)·min(r,n+1)) for the reduction of [A|b]
//   - Memory: O(r·(n+1)) for the augmented working copy
//
// See example_test.go for the three classification scenarios.
package linsys
