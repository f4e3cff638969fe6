// Package matmul multiplies dense square matrices two ways, a sequential triple
// loop and a row-parallel kernel, and checks that they always agree.
//
// What is lvlath-matmul?
//
//	A small generic library plus a benchmark command:
//		• ring/      - the Ring[T] capability (Zero, Add, Mul) and concrete rings:
//		               integers, Z/mZ, tropical (min,+), boolean, 2×2 matrices
//		• matrix/    - Dense[T], the sequential oracle Mul, the parallel ParMul /
//		               ParMulScatter kernels, the Verify oracle, Power and
//		               tropical ShortestPaths driven by any kernel
//		• generate/  - seeded random matrices (no hidden global RNG)
//		• sweep/     - the size sweep: time both kernels, verify, print
//		• cmd/matmulbench - command-line entry point
//
// How the parallel kernel stays deterministic:
//
//	Each output row is one task on a pool sized by GOMAXPROCS. Tasks finish in
//	any order and hand back (rowIndex, row); after the barrier the pairs are
//	sorted by index and stacked. Every cell folds its inner products in the same
//	increasing order as the sequential loop, so the two results are identical
//	bit for bit, for any ring.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})
//	c, _ := matrix.ParMul[int64](ctx, ring.Numeric[int64]{}, a, b)
//	// c = [[19, 22], [43, 50]]
//
//	go run github.com/katalvlaran/lvlath-matmul/cmd/matmulbench --max-exp 9
package matmul
