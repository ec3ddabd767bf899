// Package queens - board representation, tunable options and sentinel
// errors for the 8-queens hill-climbing engine.
package queens

import (
	"errors"
	"math/rand"
)

// Sentinel errors for local-search execution.
var (
	// ErrEmptyBoard is returned for a nil/empty board or a non-positive
	// board size.
	ErrEmptyBoard = errors.New("queens: board must have at least one column")

	// ErrRowOutOfRange is returned when a board value does not address a
	// row of the board.
	ErrRowOutOfRange = errors.New("queens: row value out of range")

	// ErrBadIterations is returned when the iteration cap is not positive.
	ErrBadIterations = errors.New("queens: MaxIters must be positive")

	// ErrBadSideways is returned when the sideways cap is negative.
	ErrBadSideways = errors.New("queens: sideways cap cannot be negative")

	// ErrBadRestarts is returned when the restart budget is negative.
	ErrBadRestarts = errors.New("queens: restart budget cannot be negative")
)

// Board places one queen per column: index = column, value = row.
// Boards are never mutated in place by the engine; every accepted move
// produces a fresh copy.
type Board []int

// Option configures climbing behavior via functional arguments.
// An invalid value (non-positive MaxIters, negative sideways cap) is
// recorded internally and surfaced when Climb or RandomRestart runs.
type Option func(*Options)

// Options holds parameters for Climb and RandomRestart.
type Options struct {
	// MaxIters caps the number of accepted moves in one climb.
	MaxIters int

	// AllowSideways permits equal-value moves on plateaus, up to
	// MaxSideways consecutive ones. The counter resets on every strictly
	// improving move.
	AllowSideways bool
	MaxSideways   int

	// FirstImprovement accepts the first strictly improving neighbor in
	// enumeration order instead of scanning the whole neighborhood.
	// Sideways moves do not apply under this strategy.
	FirstImprovement bool

	// Seed feeds the deterministic RNG; 0 maps to a fixed default seed so
	// the zero value stays reproducible. Ignored when Rand is set.
	Seed int64

	// Rand, if non-nil, is used directly for tie-breaking and random
	// boards. Pass one explicitly to share a single stream across a batch
	// of trials.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the canonical experiment settings:
// 1000 iterations, sideways moves allowed with a cap of 100,
// best-improvement strategy, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		MaxIters:      1000,
		AllowSideways: true,
		MaxSideways:   100,
	}
}

// WithMaxIters caps accepted moves per climb; n must be positive.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrBadIterations

			return
		}
		o.MaxIters = n
	}
}

// WithSideways sets the plateau policy:
//
//	max > 0:  allow up to max consecutive sideways moves
//	max == 0: forbid sideways moves (pure best-improvement)
//	max < 0:  invalid → ErrBadSideways
func WithSideways(max int) Option {
	return func(o *Options) {
		switch {
		case max < 0:
			o.err = ErrBadSideways
		case max == 0:
			o.AllowSideways = false
			o.MaxSideways = 0
		default:
			o.AllowSideways = true
			o.MaxSideways = max
		}
	}
}

// WithFirstImprovement switches to the first-improvement strategy.
func WithFirstImprovement() Option {
	return func(o *Options) { o.FirstImprovement = true }
}

// WithSeed seeds the deterministic RNG (0 = fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit RNG, overriding WithSeed. The engine is
// single-threaded; do not share the source with concurrent climbs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// buildOptions applies opts over the defaults and reports the first
// invalid option.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// rng resolves the random source: explicit Rand wins, otherwise a fresh
// deterministic stream from Seed.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// ClimbResult records one hill-climbing attempt.
type ClimbResult struct {
	Start          Board // the initial board (copy)
	Final          Board // the board where the climb stopped
	StartConflicts int
	FinalConflicts int
	Iters          int  // accepted moves before termination
	SidewaysUsed   int  // consecutive sideways moves at termination
	Success        bool // FinalConflicts == 0
}

// RestartResult records a random-restart run. When no attempt fully
// succeeded, Best holds the lowest-conflict attempt seen.
type RestartResult struct {
	Best         ClimbResult
	RestartsUsed int // climb attempts performed
	TotalIters   int // accepted moves summed over all attempts
	Success      bool
}
