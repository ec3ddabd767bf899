// Package search provides a frontier-driven search engine with four
// traversal policies — BFS, DFS, greedy best-first and A* — over any maze
// implementing core.Model, returning a uniform Result record.
//
// What
//
//   - BFS(m):        FIFO frontier, discovery-time dedup, shortest path in
//     edge count on unit-cost models.
//   - DFS(m):        LIFO frontier with reversed pushes for deterministic
//     order; finds some path, with no optimality claim.
//   - Greedy(m, h):  priority frontier keyed by h alone; fast, not optimal.
//   - AStar(m, h):   priority frontier keyed by g+h; optimal when h is
//     admissible and consistent.
//   - Result: action sequence, total cost, expansion count, peak
//     frontier+explored size, and a Found flag.
//
// Why
//
//	One engine, one result shape, four interchangeable policies: callers
//	benchmark the algorithms against each other on the same model without
//	adapting to four different APIs. The model supplies the goal test, so
//	the engine never assumes goal membership is positional equality.
//
// Determinism
//
//	Models enumerate actions in the canonical N,S,E,W order, BFS/DFS
//	preserve that order structurally, and the priority frontier breaks
//	ties by a monotonic insertion counter. Repeated runs over the same
//	model produce identical action sequences and identical metrics.
//
// Failure semantics
//
//	"No path within the explored space" is not an error: the Result comes
//	back with Found=false, empty Actions and zero Cost. Errors are
//	reserved for contract violations — nil model or heuristic, undefined
//	start/goal (ErrNoStart, ErrNoGoal), a model whose enumerated action
//	fails to resolve (ErrModelTransition, propagated, never swallowed) —
//	plus context cancellation and aborting OnExpand hooks.
//
// Complexity (V = reachable states, E = transitions)
//
//   - BFS/DFS:      O(V + E) time, O(V) memory.
//   - Greedy/A*:    O((V + E) log V) time, O(V + E) memory (lazy deletion
//     keeps superseded entries in the heap until popped).
//
// Usage
//
//	m, _ := maze.ParseGrid(strings.NewReader(art))
//	res, err := search.AStar(m, heuristic.Manhattan)
//	if err != nil {
//	    // ErrNilModel / ErrNoStart / ErrNoGoal / ErrNilHeuristic /
//	    // ErrModelTransition / ctx or hook error
//	}
//	if res.Found {
//	    fmt.Println(res.Actions, res.Cost)
//	}
package search
