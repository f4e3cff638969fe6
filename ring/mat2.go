// SPDX-License-Identifier: MIT

package ring

// M2 is a 2×2 int64 matrix stored row-major: [a b; c d] = M2{a, b, c, d}.
// It is comparable, so matrices of M2 work with the equality oracle.
type M2 [4]int64

// Mat2 is the ring of 2×2 int64 matrices. Multiplication does not commute,
// which makes any deviation in accumulation or operand order observable.
type Mat2 struct{}

var _ Unital[M2] = Mat2{}

// Zero returns the zero matrix.
func (Mat2) Zero() M2 { return M2{} }

// One returns the identity matrix.
func (Mat2) One() M2 { return M2{1, 0, 0, 1} }

// Add returns the elementwise sum.
func (Mat2) Add(x, y M2) M2 {
	return M2{x[0] + y[0], x[1] + y[1], x[2] + y[2], x[3] + y[3]}
}

// Mul returns the matrix product x·y.
func (Mat2) Mul(x, y M2) M2 {
	return M2{
		x[0]*y[0] + x[1]*y[2], x[0]*y[1] + x[1]*y[3],
		x[2]*y[0] + x[3]*y[2], x[2]*y[1] + x[3]*y[3],
	}
}
