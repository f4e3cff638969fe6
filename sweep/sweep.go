// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/message"

	"github.com/katalvlaran/lvlath-matmul/matrix"
	"github.com/katalvlaran/lvlath-matmul/ring"
)

// Result is the measurement for one size.
type Result struct {
	N          int
	Sequential time.Duration
	Parallel   time.Duration
}

// Suite bundles what a sweep multiplies: the ring, a source of n×n inputs and
// the two kernels under comparison. Tests swap kernels to exercise the oracle.
type Suite[T comparable] struct {
	Ring       ring.Ring[T]
	Generate   func(n int) (*matrix.Dense[T], error)
	Sequential matrix.Multiplier[T]
	Parallel   matrix.Multiplier[T]
}

// NewSuite pairs r and gen with the package's kernels: matrix.Sequential as
// the oracle and matrix.ParMul as the kernel under test.
func NewSuite[T comparable](r ring.Ring[T], gen func(n int) (*matrix.Dense[T], error)) Suite[T] {
	return Suite[T]{
		Ring:       r,
		Generate:   gen,
		Sequential: matrix.Sequential[T],
		Parallel:   matrix.ParMul[T],
	}
}

func (s Suite[T]) validate() error {
	if s.Ring == nil || s.Generate == nil || s.Sequential == nil || s.Parallel == nil {
		return ErrIncompleteSuite
	}

	return nil
}

// Run executes the sweep and returns one Result per size, in size order.
//
// Implementation:
//   - Stage 1: validate the suite and the exponent range.
//   - Stage 2: for each n, draw A, then time Parallel(A, A) followed by
//     Sequential(A, A). The same A is used as both operands.
//   - Stage 3: matrix.Verify(sequential, parallel); any error aborts the run.
//   - Stage 4: write the result line and log it at debug level.
//
// Errors:
//   - ErrIncompleteSuite, ErrBadExponent.
//   - Generator or kernel errors, wrapped with n.
//   - matrix.ErrNotEquivalent, wrapped with n, when the kernels disagree.
//   - ctx.Err() between sizes.
//
// Results gathered before an error are returned alongside it.
func Run[T comparable](ctx context.Context, s Suite[T], opts ...Option) ([]Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.minExp < 0 || cfg.maxExp < cfg.minExp || cfg.maxExp > MaxExpLimit {
		return nil, fmt.Errorf("[%d,%d] (limit %d): %w", cfg.minExp, cfg.maxExp, MaxExpLimit, ErrBadExponent)
	}

	p := message.NewPrinter(cfg.lang)
	results := make([]Result, 0, cfg.maxExp-cfg.minExp+1)
	for e := cfg.minExp; e <= cfg.maxExp; e++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		n := 1 << e

		res, err := measure(ctx, s, n)
		if err != nil {
			cfg.logger.Error("sweep aborted", slog.Int("n", n), slog.Any("err", err))
			return results, fmt.Errorf("n=%d: %w", n, err)
		}
		results = append(results, res)

		if _, err = p.Fprintf(cfg.out, "n: %d, single_time: %v, multi_time: %v\n",
			res.N, res.Sequential, res.Parallel); err != nil {
			return results, fmt.Errorf("write n=%d: %w", n, err)
		}
		cfg.logger.Debug("size done",
			slog.Int("n", n),
			slog.Duration("sequential", res.Sequential),
			slog.Duration("parallel", res.Parallel))
	}

	return results, nil
}

// measure draws one n×n input and times both kernels on A·A.
func measure[T comparable](ctx context.Context, s Suite[T], n int) (Result, error) {
	a, err := s.Generate(n)
	if err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	start := time.Now()
	par, err := s.Parallel(ctx, s.Ring, a, a)
	parElapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("parallel: %w", err)
	}

	start = time.Now()
	seq, err := s.Sequential(ctx, s.Ring, a, a)
	seqElapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("sequential: %w", err)
	}

	if err = matrix.Verify(seq, par); err != nil {
		return Result{}, err
	}

	return Result{N: n, Sequential: seqElapsed, Parallel: parElapsed}, nil
}
