// SPDX-License-Identifier: MIT
// Package: lvlath-matmul/generate
//
// generate.go - Generator and the Dense/Square constructors.
//
// Determinism:
//   - Stable draw order: for each row i asc, for each column j asc.
//   - Identical (seed, value distribution, shape sequence) ⇒ identical matrices.

package generate

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvlath-matmul/matrix"
)

// File-local method tags.
const (
	methodDense  = "Dense"
	methodSquare = "Square"
)

// Generator draws matrices whose cells come from a ValueFn.
type Generator[T any] struct {
	rng   *rand.Rand
	value ValueFn[T]
}

// New returns a Generator for value under the given options.
//
// Errors:
//   - ErrNilValueFn when value is nil.
//   - ErrNeedRandSource when no RNG was configured.
func New[T any](value ValueFn[T], opts ...Option) (*Generator[T], error) {
	if value == nil {
		return nil, fmt.Errorf("New: %w", ErrNilValueFn)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("New: %w", ErrNeedRandSource)
	}

	return &Generator[T]{rng: cfg.rng, value: value}, nil
}

// Dense draws a rows×cols matrix.
// Errors: ErrBadSize on negative dimensions.
// Complexity: O(rows*cols).
func (g *Generator[T]) Dense(rows, cols int) (*matrix.Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodDense, rows, cols, ErrBadSize)
	}
	if rows == 0 {
		m, err := matrix.NewDense[T](0, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodDense, err)
		}
		return m, nil
	}

	// lo.Times iterates 0..count-1 in order, which fixes the draw order.
	data := lo.Times(rows, func(int) []T {
		return lo.Times(cols, func(int) T { return g.value(g.rng) })
	})
	m, err := matrix.FromRows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDense, err)
	}

	return m, nil
}

// Square draws an n×n matrix.
func (g *Generator[T]) Square(n int) (*matrix.Dense[T], error) {
	m, err := g.Dense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSquare, err)
	}

	return m, nil
}
