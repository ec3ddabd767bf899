package search

import "github.com/quistella/amaze/core"

// BFS runs breadth-first search over m from the model's start position.
//
// The frontier is a FIFO queue; positions are deduplicated at discovery
// time, which bounds frontier growth and — on unit-cost models — makes the
// first goal pop the shortest path in edge count. Path cost accumulates
// through the model's StepCost, but BFS never re-relaxes: with non-uniform
// costs the returned path is not guaranteed cheapest. That is a documented
// property of the policy, not a defect.
//
// On no-path-found BFS returns Found=false with empty Actions and zero
// Cost; it returns a non-nil error only for configuration problems
// (ErrNilModel, ErrNoStart, ErrNoGoal), context cancellation, a hook
// error, or a model contract violation (ErrModelTransition).
//
// Complexity: O(V + E) time, O(V) memory over the reachable state space.
func BFS(m core.Model, opts ...Option) (*Result, error) {
	return runUninformed(m, opts, false)
}
