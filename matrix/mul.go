// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlath-matmul/ring"

// Mul performs the sequential product C = A × B over ring r.
// It is the reference semantics every other kernel must reproduce exactly.
//
// Implementation:
//   - Stage 1: validate ring, operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: allocate C (n×m) filled with r.Zero().
//   - Stage 3: for i→j→t, accumulate in place C[i][j] = Add(C[i][j], Mul(A[i][t], B[t][j])).
//
// Determinism:
//   - Every cell folds t = 0..k-1 in increasing order, starting from Zero().
//     No zero-skipping: for non-standard rings Mul(0, x) need not be Zero().
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch; all wrapped with "Mul".
//
// Complexity:
//   - Time O(n*k*m), Space O(n*m) for the result only.
func Mul[T any](r ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := validateProduct(r, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, k, m := a.r, a.c, b.c
	res, err := Zeros(r, n, m)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, t int
	for i = 0; i < n; i++ {
		rowA := a.data[i*k : (i+1)*k]
		for j = 0; j < m; j++ {
			cell := i*m + j
			for t = 0; t < k; t++ {
				res.data[cell] = r.Add(res.data[cell], r.Mul(rowA[t], b.data[t*m+j]))
			}
		}
	}

	return res, nil
}

// innerProducts computes one output row: out[j] = Σ_t row[t]*B[t][j], folding
// t ascending from r.Zero() (the same per-cell order as Mul).
// It only reads row and b, so any number of calls may run concurrently.
// Complexity: O(k*m).
func innerProducts[T any](r ring.Ring[T], row []T, b *Dense[T]) []T {
	k, m := b.r, b.c
	out := make([]T, m)
	for j := 0; j < m; j++ {
		acc := r.Zero()
		for t := 0; t < k; t++ {
			acc = r.Add(acc, r.Mul(row[t], b.data[t*m+j]))
		}
		out[j] = acc
	}

	return out
}
