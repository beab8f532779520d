// Package scalar defines the numeric element contract shared by every
// lvlinalg container and algorithm.
//
// The package provides:
//
//   - Scalar, the type-parameter constraint for matrix, vector and all
//     reduction/solver/eigen code (ordered floating-point kinds).
//   - DefaultEpsilon, the module-wide near-zero threshold.
//   - Small generic helpers (Abs, Sqrt, IsZero) used in hot loops.
//
// Partial pivoting selects candidates by largest absolute value, so the
// element type must be totally ordered; complex kinds are out of scope.
package scalar
