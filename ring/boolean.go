// SPDX-License-Identifier: MIT

package ring

// Boolean is the (∨, ∧) semiring. The product of two adjacency matrices
// answers "is there a two-step walk from i to j".
type Boolean struct{}

var _ Unital[bool] = Boolean{}

// Zero returns false.
func (Boolean) Zero() bool { return false }

// One returns true.
func (Boolean) One() bool { return true }

// Add returns a || b.
func (Boolean) Add(a, b bool) bool { return a || b }

// Mul returns a && b.
func (Boolean) Mul(a, b bool) bool { return a && b }
