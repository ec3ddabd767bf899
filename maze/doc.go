// Package maze provides the concrete state-transition models consumed by
// the search engine: a character-grid maze and a bitstring-adjacency maze,
// each parsed from a small line-oriented text format.
//
// What
//
//   - Grid: rectangular wall/free maze parsed from character rows
//     ('S' start, 'G' goal, '#' wall, '.' free); 4-connected, unit cost.
//   - Adjacency: sparse maze parsed from per-cell passability bitstrings
//     ("[r,c]:1001", bits in N,S,E,W order, '0'=open '1'=blocked), with
//     "Start:[r,c]" / "Goal:[r,c]" declarations and optional "# label"
//     comments per cell.
//
// Both types implement core.Model in full — actions enumerated in the
// canonical N,S,E,W order, transitions that fail loudly (ErrBlocked,
// ErrOutside, ErrUnknownAction) for moves they never enumerated, unit step
// cost and goal-equality membership through core.UnitCostGoalEquality.
//
// Why
//
//	The engine only sees the Model contract, so which textual convention
//	produced the maze is irrelevant to it. Keeping both encodings here
//	exercises that decoupling: identical searches run over either model.
//
// Usage
//
//	g, err := maze.ParseGrid(strings.NewReader("S..\n.#.\n..G\n"))
//	a, err := maze.ParseAdjacency(f)
//	res, err := search.BFS(g)
//
// Endpoints may come from the input or be set afterwards via SetStart /
// SetGoal; searching a model with missing endpoints fails with the
// engine's configuration errors.
package maze
