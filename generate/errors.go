// SPDX-License-Identifier: MIT
// Package: lvlath-matmul/generate
//
// errors.go - sentinel errors for the generate package.
// Callers MUST use errors.Is(err, ErrX) to branch on semantics.

package generate

import "errors"

// ErrBadSize indicates a negative row or column count.
var ErrBadSize = errors.New("generate: size must be >= 0")

// ErrNeedRandSource indicates that no *rand.Rand was configured
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrNilValueFn indicates that a nil ValueFn was passed to a generator.
var ErrNilValueFn = errors.New("generate: value function is nil")
