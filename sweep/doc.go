// SPDX-License-Identifier: MIT

// Package sweep is the benchmark harness: for n = 2^minExp … 2^maxExp it draws
// one n×n matrix A, times the parallel and the sequential product A·A, checks
// them against each other with matrix.Verify, and writes one line per size:
//
//	n: 64, single_time: 1.204ms, multi_time: 340.1µs
//
// A mismatch aborts the sweep with an error wrapping matrix.ErrNotEquivalent;
// no line is written for that size. The harness keeps no state between runs.
package sweep
