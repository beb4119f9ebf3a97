package session

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
)

// ErrOptionViolation is returned by New when an Option recorded an invalid
// value.
var ErrOptionViolation = errors.New("session: invalid option supplied")

// Option configures a Session via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when New is
// called.
type Option func(*Config)

// Config holds the resolved knobs a Session runs with.
type Config struct {
	// Bias is the probability that an undetermined measurement's random
	// branch returns true.
	Bias float64

	// Source supplies the random bits Measure consumes on its random
	// branch.
	Source rng.Source

	// Logger receives one line per gate call and measurement.
	Logger *log.Logger

	err error
}

// DefaultConfig returns a Config with a fair-coin bias, a math/rand-backed
// source seeded from 1, and a logger writing to stderr.
func DefaultConfig() Config {
	return Config{
		Bias:   tableau.DefaultBias,
		Source: rng.NewMathRand(1),
		Logger: log.New(os.Stderr, "chp: ", log.LstdFlags),
	}
}

// WithBias overrides the default measurement bias. bias must lie in
// [0, 1]; an out-of-range value is recorded and surfaced as
// ErrOptionViolation.
func WithBias(bias float64) Option {
	return func(c *Config) {
		if bias < 0 || bias > 1 {
			c.err = fmt.Errorf("%w: bias %v outside [0, 1]", ErrOptionViolation, bias)
			return
		}
		c.Bias = bias
	}
}

// WithSource injects the rng.Source a Session draws measurement bits from.
func WithSource(src rng.Source) Option {
	return func(c *Config) {
		if src == nil {
			c.err = fmt.Errorf("%w: nil source", ErrOptionViolation)
			return
		}
		c.Source = src
	}
}

// WithLogger overrides the destination for gate and measurement log lines.
// Passing nil disables logging entirely.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

func gatherOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Config{}, cfg.err
	}
	return cfg, nil
}
