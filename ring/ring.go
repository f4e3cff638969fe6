// SPDX-License-Identifier: MIT

package ring

// Ring is the capability set a matrix element type must provide.
//
// Contract:
//   - Zero returns the additive identity: Add(Zero(), x) == x.
//   - Add and Mul are pure functions of their arguments.
//   - Values are safe for concurrent use by multiple readers.
//
// Associativity and commutativity are NOT assumed by the kernels: both the
// sequential and the parallel product fold every output cell in the same
// increasing inner-index order.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// Add returns a + b.
	Add(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T
}

// Unital is a Ring that also exposes a multiplicative identity.
// It is only needed to build identity matrices.
type Unital[T any] interface {
	Ring[T]

	// One returns the multiplicative identity: Mul(One(), x) == x.
	One() T
}

// Sum folds xs left to right starting from r.Zero().
// Complexity: O(len(xs)).
func Sum[T any](r Ring[T], xs ...T) T {
	acc := r.Zero()
	for _, x := range xs {
		acc = r.Add(acc, x)
	}

	return acc
}

// Dot returns Σ a[t]*b[t] for t ascending, folding from r.Zero().
// The caller guarantees len(a) == len(b); extra elements of the longer
// slice are ignored.
// Complexity: O(min(len(a), len(b))).
func Dot[T any](r Ring[T], a, b []T) T {
	n := min(len(a), len(b))
	acc := r.Zero()
	for t := 0; t < n; t++ {
		acc = r.Add(acc, r.Mul(a[t], b[t]))
	}

	return acc
}
