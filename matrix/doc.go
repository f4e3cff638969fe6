// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix and two interchangeable
// multiplication kernels over any ring.Ring element type.
//
// The package provides:
//
//   - Dense[T], a row-major matrix with value semantics at its public surface
//     (constructors and row accessors copy; kernels never mutate operands).
//   - Mul, the sequential triple-loop product. It is the reference semantics:
//     every output cell folds A[i][t]*B[t][j] for t ascending from Zero().
//   - ParMul, the row-decomposed parallel product. One task per output row is
//     dispatched to a pool sized by runtime.GOMAXPROCS; finished rows are
//     collected in completion order, sorted by row index and reassembled.
//   - ParMulScatter, the same decomposition writing each row straight into its
//     slot of the output buffer instead of sorting.
//   - Equal / EqualFunc / Verify, the equivalence oracle used to gate reports.
//
// Because every kernel folds each cell in the same inner-index order, Mul and
// ParMul are bit-for-bit identical for ANY ring, including non-commutative and
// non-associative ones (and float64, where rounding depends on order).
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
