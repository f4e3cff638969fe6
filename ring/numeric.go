// SPDX-License-Identifier: MIT

package ring

// Number lists the built-in kinds for which Go's + and * form a ring
// (wrapping for integers, IEEE-754 for floats).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Numeric is the ordinary arithmetic ring over a built-in numeric kind.
// The zero value is ready to use: ring.Numeric[int64]{}.
type Numeric[T Number] struct{}

// Compile-time conformance.
var (
	_ Unital[int64]   = Numeric[int64]{}
	_ Unital[float64] = Numeric[float64]{}
)

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// One returns 1.
func (Numeric[T]) One() T { return 1 }

// Add returns a + b (wrapping on integer overflow).
func (Numeric[T]) Add(a, b T) T { return a + b }

// Mul returns a * b (wrapping on integer overflow).
func (Numeric[T]) Mul(a, b T) T { return a * b }
