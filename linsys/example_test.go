package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Solve 2x + y = 5, x + y = 3. The coefficient matrix is invertible, so
//	the classification is Unique and the solution reads straight off the
//	reduced augmented matrix.
//
// Complexity: O(r·(n+1)·min(r,n+1)) for the reduction.
func ExampleSystem_Solve() {
	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 1}})
	b, _ := matrix.NewFromRows([][]float64{{5}, {3}})

	sys, err := linsys.NewSystem(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	kind, err := sys.Solve(linsys.DefaultEpsilon)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, _, _ := sys.Solution()
	fmt.Println(kind)
	fmt.Println(x)
	// Output:
	// unique solution
	// [2 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Solution (solution family)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x + 2y = 3 twice over: one honest equation, one echo. One unknown is
//	free, so the answer is a particular solution plus a basis direction.
//	Every x = particular + t·basis[0] solves the system.
func ExampleSystem_Solution() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	b, _ := matrix.NewFromRows([][]float64{{3}, {6}})

	sys, _ := linsys.NewSystem(a, b)
	if _, err := sys.Solve(linsys.DefaultEpsilon); err != nil {
		fmt.Println("error:", err)

		return
	}
	particular, basis, err := sys.Solution()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("particular:", particular)
	for _, v := range basis {
		fmt.Println("direction: ", v)
	}
	// Output:
	// particular: [3 0]
	// direction:  [-2 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Kind (inconsistent system)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x + y = 2 and x + y = 3 cannot both hold. Solve reports the fact as a
//	Kind; only Solution treats it as an error.
func ExampleSystem_Kind() {
	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	b, _ := matrix.NewFromRows([][]float64{{2}, {3}})

	sys, _ := linsys.NewSystem(a, b)
	if _, err := sys.Solve(linsys.DefaultEpsilon); err != nil {
		fmt.Println("error:", err)

		return
	}
	kind, _ := sys.Kind()
	fmt.Println(kind)

	_, _, err := sys.Solution()
	fmt.Println(err)
	// Output:
	// no solution
	// Solution: linsys: system has no solution
}
