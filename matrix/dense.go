// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep value semantics: constructors copy caller data, accessors hand out copies,
//     so no two computations ever share a mutable alias.
//
// Complexity quicksheet:
//   - NewDense/Zeros/Identity/FromRows: O(r*c); At/Set: O(1); Row: O(c); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of ring elements.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A 0×k matrix still remembers k, so shape checks stay meaningful for empty
// operands.
type Dense[T any] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an r×c matrix filled with T's Go zero value.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate the flat buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Go's zero value is not the additive identity of every ring (MinPlus uses
//     +Inf). Use Zeros when the ring's Zero() matters.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newDense[T](rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense[T any](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Zeros creates an r×c matrix filled with r.Zero().
// Errors: ErrNilRing, ErrBadShape.
// Complexity: O(rows*cols).
func Zeros[T any](r ring.Ring[T], rows, cols int) (*Dense[T], error) {
	if r == nil {
		return nil, fmt.Errorf("Zeros: %w", ErrNilRing)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	zero := r.Zero()
	for k := range m.data {
		m.data[k] = zero
	}

	return m, nil
}

// Identity creates the n×n identity: One() on the diagonal, Zero() elsewhere.
//
// Errors:
//   - ErrNilRing, ErrBadShape (n < 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T any](r ring.Unital[T], n int) (*Dense[T], error) {
	if r == nil {
		return nil, matrixErrorf(opIdentity, ErrNilRing)
	}
	m, err := Zeros[T](r, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := r.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// FromRows builds a Dense from a slice of rows, copying every element.
//
// Implementation:
//   - Stage 1: take c = len(rows[0]) (0 when there are no rows).
//   - Stage 2: reject any row whose length differs from c (ErrRagged).
//   - Stage 3: copy rows into a fresh flat buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of rows; later edits to them do not leak in.
//   - FromRows(nil) and FromRows([][]T{}) both yield a 0×0 matrix.
//
// Errors:
//   - ErrRagged, wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDense[T](0, 0), nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrRagged))
		}
	}

	m := newDense[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// assembleRows packs already-owned rows of equal length cols into a Dense.
// Internal: callers (the parallel kernel) guarantee len(row) == cols.
func assembleRows[T any](rows [][]T, cols int) *Dense[T] {
	m := newDense[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(cols).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.row(i))

	return out, nil
}

// row returns the internal view of row i (no copy, no bounds check).
// Kernels only ever read through it.
func (m *Dense[T]) row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c]
}

// ToRows returns a deep copy as a slice of rows.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Clone returns a deep copy. The clone is independent of the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDense[T](m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
