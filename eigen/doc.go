// Package eigen estimates real eigenvalues and eigenvectors of dense square
// matrices by unshifted QR iteration over a fixed budget.
//
// 🚀 How does it work?
//
//	Each round factors the current iterate A = Q·R (Gram-Schmidt) and
//	replaces it with R·Q, a similarity transform that preserves the
//	spectrum. After the budget is spent the diagonal approximates the real
//	eigenvalues; each eigenvector is then recovered independently as the
//	null space of (A - λI) over the ORIGINAL matrix.
//
// ✨ Key features:
//   - fixed iteration budget: exactly MaxIter rounds, no convergence test,
//     so the cost of a call is fully predictable
//   - values reported in diagonal order, repeats included, never sorted
//   - eigenvectors normalized to unit length (with an unnormalized fallback
//     for degenerate kernels) and grouped per eigenvalue
//   - a zero placeholder vector whenever no kernel vector exists at the
//     requested epsilon, which is the honest signal for complex pairs and
//     under-converged values
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinalg/eigen"
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 1}, {2, 3}})
//	dec, _ := eigen.Decompose(a, eigen.DefaultOptions[float64]())
//	// dec.Values  ≈ [5 2]
//	// dec.Vectors ≈ [0.707 0.707], [-0.447 0.894]
//
// Accuracy notes:
//
//	Real, well-separated spectra (symmetric matrices in particular) converge
//	comfortably within the default budget. Complex eigenvalue pairs never
//	settle on the diagonal; their entries and placeholder vectors are
//	reported as-is rather than masked.
//
// Performance:
//
//   - Time:   O(MaxIter·n³) for the iteration, O(n³) per eigenvector
//   - Memory: O(n²)
//
// See example_test.go for a full decomposition walk-through.
package eigen
