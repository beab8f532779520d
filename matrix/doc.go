// Package matrix offers the dense matrix container and the elementary
// operations every higher layer builds on.
//
// The matrix package provides:
//
//   - Dense[T], a row-major flat-storage matrix over any scalar kind, with
//     bounds-checked At/Set and value-copy Clone semantics.
//   - Elementary row operations (ExchangeRows, ScaleRow, AddScaledRow) and
//     Augment, the exact primitives the rref engine drives.
//   - Arithmetic kernels (Add, Sub, Mul, Scale, Div, Neg, Transpose, MatVec)
//     with strict fail-fast validation and sentinel errors.
//   - Determinant via partial-pivot elimination and QR via classical
//     Gram-Schmidt, both honoring the caller's near-zero epsilon.
//
// Dense matrices are best for small and mid-size problems where O(r*c)
// memory is acceptable; nothing here is sparse-aware.
//
// See the examples in this package and in rref, linsys and eigen for usage
// patterns.
package matrix
