// Package amaze is an in-memory playground for classic AI search: four
// maze-traversal policies over pluggable state models, plus hill climbing
// with random restarts for the N-queens problem.
//
// 🚀 What is amaze?
//
//	A small, deterministic library that brings together:
//		• Core primitives: positions, compass actions, the Model contract
//		• Traversals: BFS, DFS (uninformed), Greedy, A* (informed)
//		• Heuristics: Manhattan and Euclidean distance estimates
//		• Mazes: character-grid and bitstring-adjacency text formats
//		• Local search: steepest-ascent hill climbing, sideways moves,
//		  first-improvement, random restarts
//
// ✨ Why choose amaze?
//
//   - Uniform results – every search returns the same Result record:
//     actions, cost, expansions, peak frontier+explored size, found flag
//   - Reproducible – canonical action order, insertion-order tie-breaks,
//     explicitly seeded randomness; same inputs, same outputs, every run
//   - Honest failure semantics – "no path" and "budget exhausted" are
//     results, not errors; errors mean broken contracts
//   - Pure Go – single-threaded algorithms, no cgo, no hidden state
//
// Everything is organized under five subpackages:
//
//	core/      — Position, Action, the Model contract & the unit-cost adapter
//	search/    — BFS, DFS, Greedy, A* over any core.Model
//	heuristic/ — Manhattan & Euclidean estimates for the informed searches
//	maze/      — grid and adjacency maze models + their text parsers
//	queens/    — N-queens hill climbing and random restarts
//
// Quick ASCII example:
//
//	S . .
//	# # .
//	G . .
//
//	a 3×3 grid maze where BFS and A* both find S→G in 6 moves.
package amaze
