// SPDX-License-Identifier: MIT
// Package: lvlath-matmul/generate
//
// Package generate produces random dense matrices for benchmarks and tests.
//
// Contract:
//   - Randomness is explicit: a *rand.Rand must be supplied via WithSeed or
//     WithRand, otherwise generation fails with ErrNeedRandSource. There is no
//     hidden global source.
//   - Cells are drawn in row-major order (i asc, then j asc), so a fixed seed
//     always yields the same matrix.
//   - Value distributions are plain functions of the RNG (ValueFn) and are
//     paired with a ring by the caller: Int16Widened for ring.Numeric[int64],
//     Residues for ring.Modular, Distances for ring.MinPlus, Bernoulli for
//     ring.Boolean, SmallMat2 for ring.Mat2.
//
// AI-Hints:
//   - Use WithSeed in tests and examples to lock outcomes.
//   - A Generator is NOT safe for concurrent use (it owns a *rand.Rand).
package generate
