// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlath-matmul/generate"
	"github.com/katalvlaran/lvlath-matmul/ring"
	"github.com/katalvlaran/lvlath-matmul/sweep"
)

// Flag defaults.
const (
	defaultRing    = ringInt64
	defaultModulus = 1_000_000_007
)

// Ring names accepted by --ring.
const (
	ringInt64   = "int64"
	ringModular = "modular"
	ringMinPlus = "minplus"
	ringBoolean = "boolean"
	ringMat2    = "mat2"
)

var errUnknownRing = errors.New("matmulbench: unknown ring")

// options holds the parsed command line.
type options struct {
	minExp, maxExp int
	seed           int64
	ringName       string
	modulus        uint64
	verbose        bool
}

func bindFlags(f *pflag.FlagSet, o *options) {
	f.IntVar(&o.minExp, "min-exp", sweep.DefaultMinExp, "smallest size exponent (n = 2^min-exp)")
	f.IntVar(&o.maxExp, "max-exp", sweep.DefaultMaxExp, "largest size exponent (n = 2^max-exp)")
	f.Int64Var(&o.seed, "seed", 0, "random seed for the input matrices (default: time-based)")
	f.StringVar(&o.ringName, "ring", defaultRing,
		fmt.Sprintf("element ring: %s, %s, %s, %s or %s", ringInt64, ringModular, ringMinPlus, ringBoolean, ringMat2))
	f.Uint64Var(&o.modulus, "modulus", defaultModulus, "modulus for --ring="+ringModular)
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log every size at debug level")
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "matmulbench",
		Short: "Compare sequential and row-parallel dense matrix multiplication",
		Long: `matmulbench multiplies a random n×n matrix by itself for n = 2^min-exp … 2^max-exp,
once with the sequential triple loop and once with the row-parallel kernel, verifies
that both products are identical, and prints the elapsed time of each.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = time.Now().UnixNano()
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), o)
		},
	}
	bindFlags(cmd.Flags(), &o)

	return cmd
}

// run wires the parsed options into a sweep over the selected ring.
func run(ctx context.Context, stdout, stderr io.Writer, o options) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("environment",
		slog.String("env", sweep.DetectEnv().String()),
		slog.String("ring", o.ringName),
		slog.Int64("seed", o.seed))

	opts := []sweep.Option{
		sweep.WithExponents(o.minExp, o.maxExp),
		sweep.WithOutput(stdout),
		sweep.WithLogger(logger),
	}

	switch o.ringName {
	case ringInt64:
		return runSuite[int64](ctx, ring.Numeric[int64]{}, generate.Int16Widened(), o.seed, opts)
	case ringModular:
		r, err := ring.NewModular(o.modulus)
		if err != nil {
			return err
		}
		return runSuite[uint64](ctx, r, generate.Residues(r), o.seed, opts)
	case ringMinPlus:
		return runSuite[float64](ctx, ring.MinPlus{}, generate.Distances(0.3, 100), o.seed, opts)
	case ringBoolean:
		return runSuite[bool](ctx, ring.Boolean{}, generate.Bernoulli(0.5), o.seed, opts)
	case ringMat2:
		return runSuite[ring.M2](ctx, ring.Mat2{}, generate.SmallMat2(8), o.seed, opts)
	default:
		return fmt.Errorf("%q: %w", o.ringName, errUnknownRing)
	}
}

func runSuite[T comparable](ctx context.Context, r ring.Ring[T], value generate.ValueFn[T], seed int64, opts []sweep.Option) error {
	g, err := generate.New(value, generate.WithSeed(seed))
	if err != nil {
		return err
	}
	_, err = sweep.Run(ctx, sweep.NewSuite(r, g.Square), opts...)

	return err
}
