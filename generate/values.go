// SPDX-License-Identifier: MIT
// Package: lvlath-matmul/generate
//
// values.go - cell value distributions.

package generate

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// ValueFn draws one cell value from rng.
type ValueFn[T any] func(rng *rand.Rand) T

// Int16Widened draws a uniform int16 and widens it to int64. Products of n×n
// such matrices stay far from int64 overflow for every n the sweep uses.
func Int16Widened() ValueFn[int64] {
	return func(rng *rand.Rand) int64 {
		return int64(int16(rng.Uint32()))
	}
}

// Residues draws uniformly from [0, m) for the given modular ring.
func Residues(r ring.Modular) ValueFn[uint64] {
	return func(rng *rand.Rand) uint64 {
		return r.Reduce(rng.Uint64())
	}
}

// Distances draws edge lengths for ring.MinPlus: with probability density an
// integer length in [1, maxLen], otherwise +Inf ("no edge"). Integer-valued
// lengths keep every sum exact in float64.
// Panics if density is outside [0,1] or maxLen < 1.
func Distances(density float64, maxLen int) ValueFn[float64] {
	if density < 0 || density > 1 || math.IsNaN(density) {
		panic("generate: Distances: density must be in [0,1]")
	}
	if maxLen < 1 {
		panic("generate: Distances: maxLen must be >= 1")
	}
	return func(rng *rand.Rand) float64 {
		if rng.Float64() >= density {
			return math.Inf(1)
		}
		return float64(1 + rng.Intn(maxLen))
	}
}

// Bernoulli draws true with probability p. Panics if p is outside [0,1].
func Bernoulli(p float64) ValueFn[bool] {
	if p < 0 || p > 1 || math.IsNaN(p) {
		panic("generate: Bernoulli: p must be in [0,1]")
	}
	return func(rng *rand.Rand) bool {
		return rng.Float64() < p
	}
}

// SmallMat2 draws 2×2 matrices with entries in [-limit, limit].
// Panics if limit < 0.
func SmallMat2(limit int64) ValueFn[ring.M2] {
	if limit < 0 {
		panic("generate: SmallMat2: limit must be >= 0")
	}
	span := 2*limit + 1
	return func(rng *rand.Rand) ring.M2 {
		var m ring.M2
		for k := range m {
			m[k] = rng.Int63n(span) - limit
		}
		return m
	}
}
