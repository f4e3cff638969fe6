// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capability required of a matrix element
// type: an additive identity, addition and multiplication.
//
// What & Why:
//
//	Matrix multiplication only needs Zero/Add/Mul. Expressing that as an
//	explicit Ring[T] value (instead of relying on Go operators) lets the same
//	kernels run over ordinary integers, modular arithmetic, the tropical
//	(min,+) semiring, the boolean (∨,∧) semiring, or any caller-defined type.
//
// Concurrency:
//
//	Every Ring in this package is a stateless value. Implementations MUST NOT
//	carry mutable state: kernels call the same Ring from many goroutines.
//
// Provided rings:
//
//	Numeric[T]  - ordinary + and * over Go integer/float kinds.
//	Modular     - uint64 arithmetic modulo m.
//	MinPlus     - tropical semiring over float64 (zero=+Inf, add=min, mul=+).
//	Boolean     - (∨, ∧) semiring over bool.
//	Mat2        - 2×2 int64 matrices; a non-commutative ring used to pin
//	              accumulation order in tests.
package ring
