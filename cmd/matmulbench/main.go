// SPDX-License-Identifier: MIT

// Command matmulbench sweeps square matrix sizes n = 2^0 … 2^max-exp, times the
// sequential and the parallel product of a random n×n matrix with itself, and
// prints one line per size. It exits non-zero if the two products ever differ.
//
// Usage:
//
//	matmulbench [--min-exp N] [--max-exp N] [--seed S] [--ring int64|modular|minplus|boolean|mat2] [--modulus M] [-v]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
