// Package heuristic provides distance estimates between grid positions for
// the informed searches in package search (Greedy, A*).
//
// What
//
//   - Func: the common signature (Position, Position) → float64, so every
//     heuristic is interchangeable at the call site.
//   - Manhattan: |Δrow| + |Δcol|. Admissible AND consistent on a
//     4-connected, unit-cost grid — the precondition A* needs for its
//     first-goal-pop optimality guarantee.
//   - Euclidean: √(Δrow² + Δcol²). Admissible (it never exceeds the
//     Manhattan bound) but looser, so A* typically expands more nodes.
//
// Why
//
//	The engine never validates admissibility or consistency; it simply
//	trusts the supplied Func. Pick Manhattan when optimality matters on
//	4-connected mazes, Euclidean when the model allows diagonal-ish cost
//	structure or you want a softer estimate.
package heuristic

import (
	"math"

	"github.com/quistella/amaze/core"
)

// Func estimates the remaining cost from a to b. Implementations must be
// pure and non-negative; the search engine calls them on every discovery.
type Func func(a, b core.Position) float64

// Manhattan returns |a.Row−b.Row| + |a.Col−b.Col|.
// Admissible and consistent for 4-directional moves of unit cost.
// Complexity: O(1).
func Manhattan(a, b core.Position) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// Euclidean returns the straight-line distance between a and b.
// Admissible on 4-connected grids (Euclidean ≤ Manhattan ≤ true cost),
// but not tight; expect more expansions than with Manhattan.
// Complexity: O(1).
func Euclidean(a, b core.Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}
