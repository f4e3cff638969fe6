// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/bits"
)

// Modular is arithmetic over uint64 modulo m (the ring Z/mZ).
//
// Inputs to Add/Mul are expected to be already reduced (< m); results are
// always reduced. Products use a 128-bit intermediate, so any m fits.
type Modular struct {
	m uint64 // modulus, >= 1
}

var _ Unital[uint64] = Modular{}

// NewModular returns the ring Z/mZ.
// Errors: ErrZeroModulus when m == 0.
// Complexity: O(1).
func NewModular(m uint64) (Modular, error) {
	if m == 0 {
		return Modular{}, fmt.Errorf("NewModular: %w", ErrZeroModulus)
	}

	return Modular{m: m}, nil
}

// Modulus returns m.
func (r Modular) Modulus() uint64 { return r.m }

// Reduce maps any uint64 into [0, m).
func (r Modular) Reduce(x uint64) uint64 { return x % r.m }

// Zero returns 0.
func (Modular) Zero() uint64 { return 0 }

// One returns 1 mod m (which is 0 when m == 1).
func (r Modular) One() uint64 { return 1 % r.m }

// Add returns (a + b) mod m without overflow.
func (r Modular) Add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	// Div64 requires hi < m; carry is 0 or 1, so carry%m equals carry unless m == 1.
	_, rem := bits.Div64(carry%r.m, sum, r.m)

	return rem
}

// Mul returns (a * b) mod m using a 128-bit product.
func (r Modular) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, r.m)
}
