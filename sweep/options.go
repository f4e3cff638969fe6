// SPDX-License-Identifier: MIT

package sweep

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
)

// Defaults (single source of truth).
const (
	// DefaultMinExp is the smallest exponent: n = 2^0 = 1.
	DefaultMinExp = 0

	// DefaultMaxExp is the largest exponent: n = 2^8 = 256.
	DefaultMaxExp = 8

	// MaxExpLimit bounds the sweep at n = 4096; beyond that the sequential
	// oracle alone runs for minutes.
	MaxExpLimit = 12
)

// Option configures Run. Constructors panic on nil arguments.
type Option func(*config)

type config struct {
	minExp, maxExp int
	out            io.Writer
	logger         *slog.Logger
	lang           language.Tag
}

func newConfig(opts ...Option) config {
	cfg := config{
		minExp: DefaultMinExp,
		maxExp: DefaultMaxExp,
		out:    os.Stdout,
		logger: slog.New(slog.DiscardHandler),
		lang:   language.English,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithExponents sets the inclusive exponent range [minExp, maxExp].
// The range is validated by Run (ErrBadExponent) so CLI input surfaces as an
// error instead of a panic.
func WithExponents(minExp, maxExp int) Option {
	return func(c *config) {
		c.minExp, c.maxExp = minExp, maxExp
	}
}

// WithOutput sets where result lines are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("sweep: WithOutput(nil)")
	}
	return func(c *config) {
		c.out = w
	}
}

// WithLogger sets the structured logger for progress events
// (default: discard).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sweep: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithLanguage selects number formatting for result lines (default English).
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}
