package search

import "github.com/quistella/amaze/core"

// AStar runs A* search over m, ordering the frontier by f = g + h with the
// same insertion-order tie break as Greedy.
//
// A state's score is relaxed whenever a strictly smaller tentative g is
// found; outdated heap entries are skipped at pop time by comparison
// against the best recorded g (lazy deletion — no decrease-key needed).
// The goal test runs at pop time, so the first time the goal is popped the
// path is optimal — contingent on h being admissible (never overestimates)
// and consistent (triangle inequality over edges). The engine does not
// validate h; violating those preconditions yields possibly-suboptimal
// results, silently.
//
// Error and no-path semantics match Greedy.
//
// Complexity: O((V + E) log V) time, O(V + E) memory worst case.
func AStar(m core.Model, h Heuristic, opts ...Option) (*Result, error) {
	return runInformed(m, h, opts, true)
}
