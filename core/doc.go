// Package core defines the shared state-transition vocabulary of amaze:
// grid positions, directional actions, and the Model contract that every
// concrete maze implements in full.
//
// What
//
//   - Position: an immutable, comparable (row, column) coordinate.
//   - Action: a closed set of four compass moves (N, S, E, W) with their
//     row/column deltas and a canonical enumeration order.
//   - Model: the state-transition contract consumed by the search engine —
//     Actions, Result, StepCost, GoalTest, plus Start/Goal accessors.
//   - UnitCostGoalEquality: an embeddable adapter supplying the common
//     "unit step cost, goal membership is equality with one goal cell"
//     behavior, so concrete models only implement what actually varies.
//
// Why
//
//	The engine in package search must stay decoupled from how a maze is
//	encoded (character grid, per-cell adjacency bits, …). Everything it
//	needs is expressed through Model; everything a model shares with its
//	siblings lives here. No model is ever partially implemented — there is
//	no runtime patching of missing methods.
//
// Determinism
//
//	Actions() enumerates moves in the fixed order N, S, E, W. Models are
//	expected to enumerate legal actions in this same order so that every
//	traversal over the same maze is reproducible.
package core
