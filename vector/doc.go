// Package vector provides a dense, value-semantics vector container used by
// the reduction, solver and eigen layers.
//
// Vector[T] is a named slice: construction is either vector.New / vector.Zero
// or an ordinary literal. All deriving operations (Add, Sub, Scale, Div,
// Normalized) allocate fresh results and never mutate their receivers, so
// kernel bases and solution vectors handed out by other packages stay
// independent of engine state.
//
// Near-zero policy: Div rejects divisors with |d| < eps and Normalized
// rejects norms below eps; both report sentinel errors matched via errors.Is.
package vector
