// Package search - option plumbing, sentinel errors and the Result record
// shared by the four traversal policies (BFS, DFS, Greedy, A*).
package search

import (
	"context"
	"errors"

	"github.com/quistella/amaze/core"
)

// Sentinel errors for search execution.
var (
	// ErrNilModel is returned when a nil Model is passed to a search.
	ErrNilModel = errors.New("search: model is nil")

	// ErrNoStart is returned when the model has no start position defined.
	ErrNoStart = errors.New("search: start position not defined")

	// ErrNoGoal is returned when the model has no goal position defined.
	ErrNoGoal = errors.New("search: goal position not defined")

	// ErrNilHeuristic is returned when Greedy or AStar receives a nil
	// heuristic function.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrModelTransition wraps a model-level contract violation: the model
	// enumerated an action via Actions that then failed in Result. Such
	// failures are propagated, never swallowed.
	ErrModelTransition = errors.New("search: model transition failed")
)

// Heuristic estimates the remaining cost from a state to the goal.
// It must be pure and non-negative. heuristic.Manhattan and
// heuristic.Euclidean satisfy this signature.
type Heuristic func(a, b core.Position) float64

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by all four policies.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnExpand is called when a node is expanded, with its state and its
	// accumulated path cost g. Returning an error aborts the search and
	// propagates that error.
	OnExpand func(state core.Position, pathCost float64) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(core.Position, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run on every node expansion;
// returning an error from this callback stops the search.
func WithOnExpand(fn func(state core.Position, pathCost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the uniform outcome record of one search call.
//
//   - Actions: the action sequence from start to goal (empty when no path
//     was found, or when start already satisfies the goal test).
//   - Cost: total accumulated step cost of that sequence (0 when not found).
//   - Expanded: number of nodes actually expanded (popped, non-stale, and
//     not the goal).
//   - MaxMemory: running maximum of |frontier| + |explored| sampled at every
//     state-discovery event — a proxy for peak structure size, not bytes.
//     It is non-decreasing over the lifetime of a single call.
//   - Found: whether a path to a goal state was reached.
type Result struct {
	Actions   []core.Action
	Cost      float64
	Expanded  int
	MaxMemory int
	Found     bool
}

// validate performs the shared precondition checks in a fixed, documented
// order: nil model, missing start, missing goal.
func validate(m core.Model) (start, goal core.Position, err error) {
	if m == nil {
		return core.Position{}, core.Position{}, ErrNilModel
	}
	start, ok := m.Start()
	if !ok {
		return core.Position{}, core.Position{}, ErrNoStart
	}
	goal, ok = m.Goal()
	if !ok {
		return core.Position{}, core.Position{}, ErrNoGoal
	}

	return start, goal, nil
}
