// SPDX-License-Identifier: MIT

// Package matrix: kernel-facing types and operation tags.
package matrix

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opParMul        = "ParMul"
	opParMulScatter = "ParMulScatter"
	opVerify        = "Verify"
	opFromRows      = "FromRows"
	opIdentity      = "Identity"
	opPower         = "Power"
	opShortestPaths = "ShortestPaths"
	opFloydWarshall = "FloydWarshall"
)

// Multiplier is the common signature of every product kernel in this package
// once adapted with a context (see Sequential). It lets harnesses treat the
// sequential oracle and the parallel kernels uniformly.
type Multiplier[T any] func(ctx context.Context, r ring.Ring[T], a, b *Dense[T]) (*Dense[T], error)

// Sequential adapts Mul to the Multiplier signature. The context is only
// checked once, before computation starts.
func Sequential[T any](ctx context.Context, r ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return Mul(r, a, b)
}

// Compile-time conformance of the exported kernels.
var (
	_ Multiplier[int64] = Sequential[int64]
	_ Multiplier[int64] = ParMul[int64]
	_ Multiplier[int64] = ParMulScatter[int64]
)

// rowResult tags one computed output row with its position in the result.
// Workers emit these in completion order; reassembly sorts by index.
type rowResult[T any] struct {
	index int // output row index, 0 ≤ index < n
	row   []T // freshly allocated row of length m, owned by the result
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
