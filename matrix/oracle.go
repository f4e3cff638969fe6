// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Equal reports whether a and b have the same shape and identical cells.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func Equal[T comparable](a, b *Dense[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable or need a looser notion of equality.
func EqualFunc[T any](a, b *Dense[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// Verify is the equivalence oracle: it returns nil when got matches want
// cell for cell, and otherwise an error naming the first mismatch in
// row-major order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape disagreement).
//   - ErrNotEquivalent, wrapped with the cell coordinates and both values.
//
// A non-nil result means one of the kernels is defective; callers must treat
// it as fatal rather than report anything computed from it.
func Verify[T comparable](want, got *Dense[T]) error {
	return VerifyFunc(want, got, func(x, y T) bool { return x == y })
}

// VerifyFunc is Verify with a caller-supplied element comparison.
func VerifyFunc[T any](want, got *Dense[T], eq func(x, y T) bool) error {
	if err := ValidateBinarySameShape(want, got); err != nil {
		return matrixErrorf(opVerify, err)
	}
	for k := range want.data {
		if !eq(want.data[k], got.data[k]) {
			i, j := k/want.c, k%want.c
			return matrixErrorf(opVerify, fmt.Errorf("cell (%d,%d): want %v, got %v: %w",
				i, j, want.data[k], got.data[k], ErrNotEquivalent))
		}
	}

	return nil
}
