package search

import "github.com/quistella/amaze/core"

// Greedy runs greedy best-first search over m, ordering the frontier by
// h(state, goal) alone.
//
// Priority ties are broken by a monotonic insertion counter (earlier entry
// pops first), so the expansion order is fully deterministic. A discovered
// state is re-inserted only when a strictly smaller priority is found;
// superseded heap entries linger and are skipped at pop time.
//
// Greedy is not optimal in general — it chases the heuristic and commits
// to whatever path reached the goal first. Error and no-path semantics
// match BFS, plus ErrNilHeuristic for a nil h.
//
// Complexity: O((V + E) log V) time, O(V + E) memory worst case.
func Greedy(m core.Model, h Heuristic, opts ...Option) (*Result, error) {
	return runInformed(m, h, opts, false)
}
