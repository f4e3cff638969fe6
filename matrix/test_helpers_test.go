// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep every random fixture seeded so failures reproduce.

package matrix_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-matmul/matrix"
	"github.com/katalvlaran/lvlath-matmul/ring"
)

// int64Ring is the ring used by most fixtures.
var int64Ring = ring.Numeric[int64]{}

// kernel names a product kernel under a common signature.
type kernel[T any] struct {
	name string
	mul  matrix.Multiplier[T]
}

// kernels returns every product kernel in the package, sequential first.
func kernels[T any]() []kernel[T] {
	return []kernel[T]{
		{"Sequential", matrix.Sequential[T]},
		{"ParMul", matrix.ParMul[T]},
		{"ParMulScatter", matrix.ParMulScatter[T]},
	}
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows[T any](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustMul runs k on (a, b) over r with a background context or fails the test.
func MustMul[T any](tb testing.TB, k kernel[T], r ring.Ring[T], a, b *matrix.Dense[T]) *matrix.Dense[T] {
	tb.Helper()
	c, err := k.mul(context.Background(), r, a, b)
	require.NoError(tb, err, k.name)

	return c
}

// RandomFill returns an rows×cols matrix whose cells come from gen(rng),
// with rng seeded from seed (row-major draw order).
func RandomFill[T any](tb testing.TB, rows, cols int, seed int64, gen func(*rand.Rand) T) *matrix.Dense[T] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[T](rows, cols)
	require.NoError(tb, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(tb, m.Set(i, j, gen(rng)))
		}
	}

	return m
}

// smallInt draws the default value domain: int16 widened to int64.
func smallInt(rng *rand.Rand) int64 { return int64(int16(rng.Uint32())) }

// requireSame fails with a row-wise diff when want and got differ.
// msgAndArgs is a printf-style context: format first, then its arguments.
func requireSame[T comparable](tb testing.TB, want, got *matrix.Dense[T], msgAndArgs ...any) {
	tb.Helper()
	if matrix.Equal(want, got) {
		return
	}
	var label string
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			label = fmt.Sprintf(format, msgAndArgs[1:]...)
		}
	}
	require.Failf(tb, "matrices differ", "%s (-want +got):\n%s",
		label, cmp.Diff(want.ToRows(), got.ToRows()))
}

// delayRing is integer arithmetic whose Mul sleeps a microseconds. Feeding it
// rows whose values shrink with the row index makes early rows finish last,
// which scrambles completion order on any machine with more than one P.
type delayRing struct{ ring.Numeric[int64] }

func (delayRing) Mul(a, b int64) int64 {
	time.Sleep(time.Duration(a) * time.Microsecond)
	return a * b
}
