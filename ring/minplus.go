// SPDX-License-Identifier: MIT

package ring

import "math"

// MinPlus is the tropical semiring over float64:
//
//	Zero = +Inf, Add = min, Mul = +, One = 0.
//
// With a distance matrix D (D[i][i] = 0, +Inf for "no edge"), the product
// D·D holds the shortest paths using at most two edges, and repeated squaring
// converges to all-pairs shortest paths.
type MinPlus struct{}

var _ Unital[float64] = MinPlus{}

// Zero returns +Inf ("no path").
func (MinPlus) Zero() float64 { return math.Inf(1) }

// One returns 0 (the empty path).
func (MinPlus) One() float64 { return 0 }

// Add returns min(a, b).
func (MinPlus) Add(a, b float64) float64 {
	if b < a {
		return b
	}

	return a
}

// Mul returns a + b; +Inf absorbs.
func (MinPlus) Mul(a, b float64) float64 { return a + b }
