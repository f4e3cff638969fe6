// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-matmul/matrix"
)

// TestPowerMatchesRepeatedProduct compares A^k with k-1 sequential products.
func TestPowerMatchesRepeatedProduct(t *testing.T) {
	t.Parallel()

	gen := func(rng *rand.Rand) int64 { return rng.Int63n(7) - 3 }
	a := RandomFill(t, 6, 6, 21, gen)

	want := a
	for k := 1; k <= 9; k++ {
		if k > 1 {
			var err error
			want, err = matrix.Mul[int64](int64Ring, want, a)
			require.NoError(t, err)
		}
		for _, kr := range kernels[int64]() {
			got, err := matrix.Power[int64](context.Background(), int64Ring, a, k, kr.mul)
			require.NoError(t, err)
			requireSame(t, want, got, "%s k=%d", kr.name, k)
		}
	}

	id, err := matrix.Identity[int64](int64Ring, 6)
	require.NoError(t, err)
	got, err := matrix.Power[int64](context.Background(), int64Ring, a, 0, matrix.ParMul[int64])
	require.NoError(t, err)
	requireSame(t, id, got)
}

func TestPowerErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sq := MustFromRows(t, [][]int64{{1}})
	_, err := matrix.Power[int64](ctx, int64Ring, sq, -1, matrix.ParMul[int64])
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)

	rect := MustFromRows(t, [][]int64{{1, 2}})
	_, err = matrix.Power[int64](ctx, int64Ring, rect, 2, matrix.ParMul[int64])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Power[int64](ctx, nil, sq, 2, matrix.ParMul[int64])
	require.ErrorIs(t, err, matrix.ErrNilRing)
}

// TestShortestPathsMatchesFloydWarshall: tropical squaring with either kernel
// agrees with in-place Floyd–Warshall on random sparse graphs.
func TestShortestPathsMatchesFloydWarshall(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	for seed := int64(0); seed < 5; seed++ {
		gen := func(rng *rand.Rand) float64 {
			if rng.Float64() < 0.7 {
				return inf
			}
			return float64(1 + rng.Intn(20))
		}
		d := RandomFill(t, 20, 20, seed, gen)

		want := d.Clone()
		require.NoError(t, matrix.FloydWarshall(want))

		for _, kr := range kernels[float64]() {
			got, err := matrix.ShortestPaths(context.Background(), d, kr.mul)
			require.NoError(t, err)
			requireSame(t, want, got, "%s seed=%d", kr.name, seed)
		}
	}

	_, err := matrix.ShortestPaths(context.Background(), MustFromRows(t, [][]float64{{1, 2}}), matrix.ParMul[float64])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}

// TestShortestPathsTiny covers n = 0, 1, 2 where no squaring is needed.
func TestShortestPathsTiny(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	d := MustFromRows(t, [][]float64{{5, 3}, {inf, inf}})
	got, err := matrix.ShortestPaths(context.Background(), d, matrix.Sequential[float64])
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 3}, {inf, 0}}, got.ToRows())

	empty := MustFromRows[float64](t, nil)
	got, err = matrix.ShortestPaths(context.Background(), empty, matrix.ParMul[float64])
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
}
