// SPDX-License-Identifier: MIT
// Package: lvlath-matmul/generate
//
// options.go - functional options for generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generate

import "math/rand"

// config aggregates all generator knobs. Later options override earlier ones.
type config struct {
	// RNG for cell values; nil means "not configured" and is an error at use.
	rng *rand.Rand
}

// Option customizes a Generator.
type Option func(*config)

// newConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
