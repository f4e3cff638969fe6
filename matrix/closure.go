// SPDX-License-Identifier: MIT

// Package matrix - powers and tropical closure.
//
// Purpose:
//   - Drive any product kernel (Multiplier) through repeated products: A^k by
//     binary exponentiation, and all-pairs shortest paths by repeated
//     squaring in the (min,+) semiring.
//   - Keep Floyd–Warshall as an independent in-place reference for the
//     tropical closure.

package matrix

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// Power returns a^k over r, computing every product with mul.
//
// Implementation:
//   - Stage 1: ValidateSquare(a); k >= 0.
//   - Stage 2: binary exponentiation from Identity(n): for each bit of k
//     (low to high) multiply the accumulator by the current square when the bit
//     is set, then square.
//
// Determinism:
//   - The sequence of products depends only on k, so any two kernels that
//     agree on single products agree on Power.
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch, ErrNegativeExponent,
//     plus anything mul returns.
//
// Complexity:
//   - O(log k) products.
func Power[T any](ctx context.Context, r ring.Unital[T], a *Dense[T], k int, mul Multiplier[T]) (*Dense[T], error) {
	if r == nil {
		return nil, matrixErrorf(opPower, ErrNilRing)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("k=%d: %w", k, ErrNegativeExponent))
	}

	acc, err := Identity(r, a.r)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base := a
	for k > 0 {
		if k&1 == 1 {
			if acc, err = mul(ctx, r, acc, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = mul(ctx, r, base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return acc, nil
}

// ShortestPaths returns all-pairs shortest path lengths for the edge-length
// matrix d (+Inf = no edge), computed by repeated (min,+) squaring with mul.
//
// Implementation:
//   - Stage 1: copy d and clamp the diagonal to min(d[i][i], 0) so that paths
//     may stop early.
//   - Stage 2: square ⌈log2(n-1)⌉ times; after s squarings the matrix holds the
//     shortest paths of at most 2^s edges.
//
// Notes:
//   - Negative cycles are not detected; lengths are expected to be >= 0.
//
// Complexity:
//   - O(log n) products of n×n matrices.
func ShortestPaths(ctx context.Context, d *Dense[float64], mul Multiplier[float64]) (*Dense[float64], error) {
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opShortestPaths, err)
	}

	n := d.r
	dist := d.Clone()
	for i := 0; i < n; i++ {
		dist.data[i*n+i] = math.Min(dist.data[i*n+i], 0)
	}

	r := ring.MinPlus{}
	var err error
	for hops := 1; hops < n-1; hops <<= 1 {
		if dist, err = mul(ctx, r, dist, dist); err != nil {
			return nil, matrixErrorf(opShortestPaths, err)
		}
	}

	return dist, nil
}

// FloydWarshall computes all-pairs shortest paths in place over the
// edge-length matrix d (+Inf = no edge, diagonal clamped to 0).
//
// Implementation:
//   - Stage 1: ValidateSquare(d); set d[i][i] = min(d[i][i], 0).
//   - Stage 2: k→i→j relaxation on the flat buffer, strict improvement only.
//
// Complexity:
//   - Time O(n³), Space O(1).
func FloydWarshall(d *Dense[float64]) error {
	if err := ValidateSquare(d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	n := d.r
	data := d.data
	for i := 0; i < n; i++ {
		data[i*n+i] = math.Min(data[i*n+i], 0)
	}

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j], d[i,k]+d[k,j]
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
