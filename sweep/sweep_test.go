// SPDX-License-Identifier: MIT
// Package sweep_test covers the harness: output format, oracle gating and
// argument validation.
package sweep_test

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-matmul/generate"
	"github.com/katalvlaran/lvlath-matmul/matrix"
	"github.com/katalvlaran/lvlath-matmul/ring"
	"github.com/katalvlaran/lvlath-matmul/sweep"
)

var lineRE = regexp.MustCompile(`^n: (\d+), single_time: \S+, multi_time: \S+$`)

func int64Suite(t *testing.T, seed int64) sweep.Suite[int64] {
	t.Helper()
	g, err := generate.New(generate.Int16Widened(), generate.WithSeed(seed))
	require.NoError(t, err)

	return sweep.NewSuite[int64](ring.Numeric[int64]{}, g.Square)
}

// TestRunWritesOneLinePerSize checks the line format and size order.
func TestRunWritesOneLinePerSize(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	results, err := sweep.Run(context.Background(), int64Suite(t, 1),
		sweep.WithExponents(0, 5), sweep.WithOutput(&out))
	require.NoError(t, err)
	require.Len(t, results, 6)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	for e, line := range lines {
		m := lineRE.FindStringSubmatch(line)
		require.NotNil(t, m, "line %q", line)
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		require.Equal(t, 1<<e, n)
		require.Equal(t, n, results[e].N)
	}
}

// TestRunAbortsOnMismatch: a defective parallel kernel stops the sweep at the
// first size where it diverges, and no line is printed for that size.
func TestRunAbortsOnMismatch(t *testing.T) {
	t.Parallel()

	s := int64Suite(t, 2)
	s.Parallel = func(ctx context.Context, r ring.Ring[int64], a, b *matrix.Dense[int64]) (*matrix.Dense[int64], error) {
		c, err := matrix.ParMul(ctx, r, a, b)
		if err != nil || c.Rows() < 4 {
			return c, err
		}
		v, _ := c.At(c.Rows()-1, 0)
		_ = c.Set(c.Rows()-1, 0, v+1) // corrupt the last row
		return c, nil
	}

	var out bytes.Buffer
	results, err := sweep.Run(context.Background(), s, sweep.WithExponents(0, 4), sweep.WithOutput(&out))
	require.ErrorIs(t, err, matrix.ErrNotEquivalent)
	require.Contains(t, err.Error(), "n=4")
	require.Len(t, results, 2) // n=1 and n=2 passed
	require.Equal(t, 2, strings.Count(out.String(), "\n"))
}

// TestRunOtherRings: the harness is generic over the element type.
func TestRunOtherRings(t *testing.T) {
	t.Parallel()

	g, err := generate.New(generate.Distances(0.4, 50), generate.WithSeed(3))
	require.NoError(t, err)
	_, err = sweep.Run(context.Background(), sweep.NewSuite[float64](ring.MinPlus{}, g.Square),
		sweep.WithExponents(0, 4), sweep.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	gm, err := generate.New(generate.SmallMat2(5), generate.WithSeed(4))
	require.NoError(t, err)
	_, err = sweep.Run(context.Background(), sweep.NewSuite[ring.M2](ring.Mat2{}, gm.Square),
		sweep.WithExponents(2, 4), sweep.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
}

// TestRunValidation covers the argument errors.
func TestRunValidation(t *testing.T) {
	t.Parallel()

	s := int64Suite(t, 5)
	for _, exps := range [][2]int{{-1, 2}, {3, 2}, {0, sweep.MaxExpLimit + 1}} {
		_, err := sweep.Run(context.Background(), s, sweep.WithExponents(exps[0], exps[1]))
		require.ErrorIs(t, err, sweep.ErrBadExponent, "%v", exps)
	}

	incomplete := s
	incomplete.Parallel = nil
	_, err := sweep.Run(context.Background(), incomplete)
	require.ErrorIs(t, err, sweep.ErrIncompleteSuite)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sweep.Run(ctx, s, sweep.WithOutput(&bytes.Buffer{}))
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { sweep.WithOutput(nil) })
	require.Panics(t, func() { sweep.WithLogger(nil) })
}

// TestRunLogsProgress: one debug record per size.
func TestRunLogsProgress(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := sweep.Run(context.Background(), int64Suite(t, 6),
		sweep.WithExponents(0, 2), sweep.WithOutput(&bytes.Buffer{}), sweep.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(logs.String(), `msg="size done"`))
}

func TestDetectEnv(t *testing.T) {
	t.Parallel()

	env := sweep.DetectEnv()
	require.Positive(t, env.NumCPU)
	require.Equal(t, matrix.Parallelism(), env.Parallelism)
	require.Contains(t, env.String(), "gomaxprocs=")
}
