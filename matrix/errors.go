// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag
// via %w) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// ERROR PRIORITY (enforced in tests):
// nil ring -> nil matrix -> dimension mismatch.

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul where
	// a.Cols() != b.Rows(), or Verify on matrices of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates that input rows do not all share the same length.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates that a nil ring.Ring was passed to a kernel.
	ErrNilRing = errors.New("matrix: nil ring")

	// ErrNotEquivalent is reported by Verify when two same-shaped matrices
	// differ in at least one cell. For Mul vs ParMul this is a defect in the
	// implementation, never an input condition.
	ErrNotEquivalent = errors.New("matrix: results are not equivalent")

	// ErrNegativeExponent is returned by Power for k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)
