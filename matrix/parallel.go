// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// Parallelism reports how many row tasks may run at once: the ambient
// runtime.GOMAXPROCS setting.
func Parallelism() int {
	return runtime.GOMAXPROCS(0)
}

// ParMul computes C = A × B by row decomposition on a shared worker pool.
//
// Implementation:
//   - Stage 1: validate exactly like Mul, before anything is dispatched.
//   - Stage 2: submit one task per row index i ∈ [0,n) to an errgroup limited to
//     Parallelism() goroutines. Task i reads row i of A and all of B.
//   - Stage 3: each task sends rowResult{i, row} on a channel buffered for n;
//     results therefore arrive in completion order, not index order.
//   - Stage 4: after the barrier (Wait), sort the buffer by index ascending.
//   - Stage 5: project the rows out in sorted order into the result.
//
// Behavior highlights:
//   - No locks: the only shared data (A, B, r) is read-only during compute.
//   - Output row order is ascending on every run, regardless of scheduling.
//   - n == 0 returns an empty 0×m result without starting a single task.
//
// Cancellation:
//   - If ctx is done, tasks that have not started yet are skipped and ctx's
//     error is returned; there are no partial results.
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch, ctx.Err(); wrapped with "ParMul".
//
// Complexity:
//   - Time O(n*k*m / P + n log n), Space O(n*m) (one intermediate buffer of rows).
func ParMul[T any](ctx context.Context, r ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := validateProduct(r, a, b); err != nil {
		return nil, matrixErrorf(opParMul, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, matrixErrorf(opParMul, err)
	}

	n, m := a.r, b.c
	if n == 0 {
		return newDense[T](0, m), nil
	}

	done := make(chan rowResult[T], n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Parallelism())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			done <- rowResult[T]{index: i, row: innerProducts(r, a.row(i), b)}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opParMul, err)
	}
	close(done)

	unordered := make([]rowResult[T], 0, n)
	for res := range done {
		unordered = append(unordered, res)
	}
	slices.SortFunc(unordered, func(x, y rowResult[T]) int {
		return cmp.Compare(x.index, y.index)
	})
	rows := lo.Map(unordered, func(res rowResult[T], _ int) []T {
		return res.row
	})

	return assembleRows(rows, m), nil
}

// ParMulScatter is ParMul with the reassembly done by position instead of by
// sorting: task i writes its row into rows i*m..(i+1)*m-1 of the output
// buffer. Distinct tasks write disjoint ranges, so no synchronization beyond
// the final barrier is needed. Same contract and errors as ParMul.
func ParMulScatter[T any](ctx context.Context, r ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := validateProduct(r, a, b); err != nil {
		return nil, matrixErrorf(opParMulScatter, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, matrixErrorf(opParMulScatter, err)
	}

	n, m := a.r, b.c
	res := newDense[T](n, m)
	if n == 0 {
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Parallelism())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			copy(res.data[i*m:(i+1)*m], innerProducts(r, a.row(i), b))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opParMulScatter, err)
	}

	return res, nil
}
