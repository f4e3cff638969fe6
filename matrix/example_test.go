package matrix_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-matmul/matrix"
	"github.com/katalvlaran/lvlath-matmul/ring"
)

// ExampleParMul multiplies two small integer matrices on the worker pool and
// checks the result against the sequential oracle.
func ExampleParMul() {
	r := ring.Numeric[int64]{}
	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})

	par, err := matrix.ParMul[int64](context.Background(), r, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seq, _ := matrix.Mul[int64](r, a, b)

	fmt.Print(par)
	fmt.Println("equivalent:", matrix.Verify(seq, par) == nil)
	// Output:
	// [19, 22]
	// [43, 50]
	// equivalent: true
}

// ExampleMul shows the shape check that runs before any computation.
func ExampleMul() {
	a, _ := matrix.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})

	_, err := matrix.Mul[int64](ring.Numeric[int64]{}, a, b)
	fmt.Println(err)
	// Output:
	// Mul: ValidateMulCompatible: 2x3 · 2x2: matrix: dimension mismatch
}

// ExampleMul_minPlus squares a distance matrix in the tropical semiring,
// giving the shortest routes that use at most two hops.
func ExampleMul_minPlus() {
	inf := math.Inf(1)
	d, _ := matrix.FromRows([][]float64{
		{0, 4, inf},
		{inf, 0, 1},
		{2, inf, 0},
	})

	d2, _ := matrix.Mul[float64](ring.MinPlus{}, d, d)
	fmt.Print(d2)
	// Output:
	// [0, 4, 5]
	// [3, 0, 1]
	// [2, 6, 0]
}
