package rref_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/rref"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEchelon_ToRREF
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reduce an invertible 2x2 all the way to RREF and inspect the pivots.
//	An invertible matrix reduces to the identity, one pivot per column.
//
// Complexity: O(r·c·min(r,c)) time, O(r·c) memory for the working copy.
func ExampleEchelon_ToRREF() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	e, err := rref.New(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = e.ToRREF(rref.DefaultEpsilon); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(e.Matrix())
	fmt.Println("stage:", e.Stage())
	fmt.Println("pivots:", e.Pivots())
	// Output:
	// [1 0]
	// [0 1]
	// stage: RREF
	// pivots: [{0 0} {1 1}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEchelon_Kernel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A rank-1 matrix with dependent rows: one free column, so the null
//	space is one-dimensional. The free slot carries the 1.
func ExampleEchelon_Kernel() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	e, _ := rref.New(m)

	basis, err := e.Kernel(rref.DefaultEpsilon)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rank, _ := e.Rank(rref.DefaultEpsilon)
	fmt.Println("rank:", rank)
	for _, v := range basis {
		fmt.Println(v)
	}
	// Output:
	// rank: 1
	// [-2 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Invert a 2x2 by the [A|I] sweep. Singular input would yield
//	ErrSingular instead of a garbage inverse.
func ExampleInverse() {
	m, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 1}})

	inv, err := rref.Inverse(m, rref.DefaultEpsilon)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(inv)
	// Output:
	// [1 -1]
	// [-1 2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRank
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One-shot rank queries; the input matrix is never mutated.
func ExampleRank() {
	full, _ := matrix.NewFromRows([][]float64{{1, 0}, {0, 1}})
	deficient, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})

	r1, _ := rref.Rank(full, rref.DefaultEpsilon)
	r2, _ := rref.Rank(deficient, rref.DefaultEpsilon)
	fmt.Println(r1, r2)
	// Output:
	// 2 1
}
