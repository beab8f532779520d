// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Vector is a dense vector of scalar elements. The zero value is an empty
// vector; use New/Zero or a slice literal for sized construction.
type Vector[T scalar.Scalar] []T

// New returns a zero vector of length n.
// Returns ErrBadLength when n < 1.
func New[T scalar.Scalar](n int) (Vector[T], error) {
	if n < 1 {
		return nil, ErrBadLength
	}
	return make(Vector[T], n), nil
}

// Zero is an alias of New kept for call-site readability.
func Zero[T scalar.Scalar](n int) (Vector[T], error) { return New[T](n) }

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v) }

// Clone returns an independent copy.
func (v Vector[T]) Clone() Vector[T] {
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}

// At returns the element at index i, bounds-checked.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}
	return v[i], nil
}

// Set stores x at index i, bounds-checked.
func (v Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return fmt.Errorf("Set(%d): %w", i, ErrOutOfRange)
	}
	v[i] = x
	return nil
}

// Add returns v + o as a fresh vector.
// Returns ErrDimensionMismatch when lengths differ.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("Add: %w", ErrDimensionMismatch)
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out, nil
}

// Sub returns v - o as a fresh vector.
// Returns ErrDimensionMismatch when lengths differ.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if len(v) != len(o) {
		return nil, fmt.Errorf("Sub: %w", ErrDimensionMismatch)
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out, nil
}

// Scale returns alpha * v as a fresh vector.
func (v Vector[T]) Scale(alpha T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = alpha * v[i]
	}
	return out
}

// Div returns v / alpha as a fresh vector.
// Divisors with |alpha| < eps are rejected with ErrDivideByZero.
func (v Vector[T]) Div(alpha, eps T) (Vector[T], error) {
	if scalar.IsZero(alpha, eps) {
		return nil, fmt.Errorf("Div: %w", ErrDivideByZero)
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] / alpha
	}
	return out, nil
}

// Dot returns the inner product of v and o.
// Returns ErrDimensionMismatch when lengths differ.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	var zero T
	if len(v) != len(o) {
		return zero, fmt.Errorf("Dot: %w", ErrDimensionMismatch)
	}
	sum := zero
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum, nil
}

// Norm returns the Euclidean norm sqrt(v . v).
func (v Vector[T]) Norm() T {
	var sum T
	for _, x := range v {
		sum += x * x
	}
	return scalar.Sqrt(sum)
}

// Normalized returns v / ||v|| as a fresh vector.
// Norms below eps are rejected with ErrZeroNorm so the caller can pick a
// fallback (the eigen layer keeps the unnormalized vector in that case).
func (v Vector[T]) Normalized(eps T) (Vector[T], error) {
	n := v.Norm()
	if scalar.IsZero(n, eps) {
		return nil, fmt.Errorf("Normalized: %w", ErrZeroNorm)
	}
	return v.Div(n, eps)
}

// IsZero reports whether every element satisfies |x| < eps.
func (v Vector[T]) IsZero(eps T) bool {
	for _, x := range v {
		if !scalar.IsZero(x, eps) {
			return false
		}
	}
	return true
}

// Equal reports whether v and o have the same length and agree elementwise
// within eps.
func (v Vector[T]) Equal(o Vector[T], eps T) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !scalar.IsZero(v[i]-o[i], eps) {
			return false
		}
	}
	return true
}

// String renders the vector as "[x0 x1 ... xn]" for debugging output.
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", float64(x))
	}
	b.WriteByte(']')
	return b.String()
}
