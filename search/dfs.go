package search

import "github.com/quistella/amaze/core"

// DFS runs depth-first search over m from the model's start position.
//
// The frontier is a LIFO stack. Actions are pushed in reversed enumeration
// order so they are explored in the originally enumerated order when
// popped, keeping the traversal deterministic. Positions are deduplicated
// at discovery time, exactly as in BFS.
//
// DFS is neither optimal nor, on unbounded state spaces, complete; tests
// must not assert path optimality for this policy. Error and no-path
// semantics match BFS.
//
// Complexity: O(V + E) time, O(V) memory over the reachable state space.
func DFS(m core.Model, opts ...Option) (*Result, error) {
	return runUninformed(m, opts, true)
}
