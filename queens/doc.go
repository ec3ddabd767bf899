// Package queens implements hill climbing with sideways moves and random
// restarts for the N-queens problem (8 by default in the experiments).
//
// What
//
//   - Board: one queen per column (index = column, value = row), mutated
//     only by copy.
//   - Conflicts: attacking-pair count; 0 means a valid solution.
//   - Climb: steepest-ascent best-improvement with optional sideways moves
//     under a cap and uniform random tie-breaking, or first-improvement via
//     WithFirstImprovement.
//   - RandomRestart: repeated climbs from random boards up to a budget,
//     first success wins, best attempt retained otherwise.
//
// Neighborhood
//
//	Full row reassignment: every column, every alternative row — N×(N−1)
//	neighbors per step, scanned in deterministic column-major order. The
//	alternative column-swap (permutation) neighborhood induces a
//	different landscape and is intentionally not offered.
//
// Determinism
//
//	Every random decision — tie-breaks among equally good neighbors,
//	restart boards — draws from one explicitly seeded source (WithSeed /
//	WithRand; seed 0 maps to a fixed default). Same seed, same trajectory,
//	same metrics, every run.
//
// Failure semantics
//
//	Hitting the iteration or restart cap is an ordinary outcome:
//	Success=false with the remaining conflict count, never an error.
//	Errors flag contract violations only — malformed boards, non-positive
//	caps, negative budgets.
//
// Usage
//
//	res, err := queens.Climb(board, queens.WithSeed(42))
//	rr, err := queens.RandomRestart(8, 100, queens.WithSideways(100), queens.WithSeed(42))
//	if rr.Success {
//	    fmt.Println(rr.Best.Final, rr.RestartsUsed, rr.TotalIters)
//	}
package queens
