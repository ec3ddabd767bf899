// Package core - positions and directional actions shared by all mazes.
package core

// Position identifies a cell by (row, column). It is a small comparable
// value type: safe as a map key, copied freely, never mutated.
type Position struct {
	Row, Col int
}

// Action is one of the four compass moves. Not every action is legal from
// every position; legality is decided by the Model that owns the state.
type Action uint8

const (
	// North moves one row up (row-1).
	North Action = iota
	// South moves one row down (row+1).
	South
	// East moves one column right (col+1).
	East
	// West moves one column left (col-1).
	West

	numActions
)

// actionNames holds the compass letter of each Action, indexed by value.
var actionNames = [numActions]string{"N", "S", "E", "W"}

// actionDeltas holds the (row, col) offset of each Action, indexed by value.
var actionDeltas = [numActions][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// String returns the compass letter of a, or "?" for an out-of-range value.
func (a Action) String() string {
	if a >= numActions {
		return "?"
	}

	return actionNames[a]
}

// Valid reports whether a is one of the four defined moves.
func (a Action) Valid() bool { return a < numActions }

// Delta returns the row and column offsets applied by a.
// Delta of an out-of-range Action is (0, 0).
func (a Action) Delta() (dr, dc int) {
	if a >= numActions {
		return 0, 0
	}

	return actionDeltas[a][0], actionDeltas[a][1]
}

// Apply returns the position reached by taking a from p.
// It performs no legality check; that is the Model's job.
func (a Action) Apply(p Position) Position {
	dr, dc := a.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Actions returns all four moves in the canonical enumeration order
// N, S, E, W. The returned slice is freshly allocated on each call.
func Actions() []Action {
	return []Action{North, South, East, West}
}
