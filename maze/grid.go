package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quistella/amaze/core"
)

// Grid is a rectangular maze of wall and free cells, 4-connected with unit
// step cost. It implements core.Model; goal membership is equality with
// the single goal cell via the embedded adapter.
// A Grid is immutable after parsing except through SetStart and SetGoal.
type Grid struct {
	core.UnitCostGoalEquality

	width, height int
	wall          [][]bool // wall[row][col]
	start         core.Position
	hasStart      bool
}

// Grid cell characters.
const (
	cellStart = 'S'
	cellGoal  = 'G'
	cellWall  = '#'
	cellFree  = '.'
)

// ParseGrid reads a character-grid maze: one line per row, 'S' start,
// 'G' goal, '#' wall, '.' free. Blank lines are skipped; all non-blank
// rows must have the same length.
//
// Returns ErrEmptyMaze, ErrRagged, ErrBadCell, ErrDuplicateStart or
// ErrDuplicateGoal on malformed input. A grid without 'S' or 'G' parses
// fine — set the endpoints later with SetStart/SetGoal, or let the search
// engine fail with its own configuration error.
//
// Complexity: O(W×H) time and memory.
func ParseGrid(r io.Reader) (*Grid, error) {
	g := &Grid{}
	hasGoal := false

	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		if g.width == 0 {
			g.width = len(line)
		} else if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, row, len(line), g.width)
		}
		cells := make([]bool, g.width)
		for col, ch := range line {
			switch ch {
			case cellWall:
				cells[col] = true
			case cellFree:
			case cellStart:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second 'S' at [%d,%d]", ErrDuplicateStart, row, col)
				}
				g.start = core.Position{Row: row, Col: col}
				g.hasStart = true
			case cellGoal:
				if hasGoal {
					return nil, fmt.Errorf("%w: second 'G' at [%d,%d]", ErrDuplicateGoal, row, col)
				}
				g.SetGoal(core.Position{Row: row, Col: col})
				hasGoal = true
			default:
				return nil, fmt.Errorf("%w: %q at [%d,%d]", ErrBadCell, ch, row, col)
			}
		}
		g.wall = append(g.wall, cells)
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading grid: %w", err)
	}
	if row == 0 {
		return nil, ErrEmptyMaze
	}
	g.height = row

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// SetStart overrides the start cell.
func (g *Grid) SetStart(p core.Position) {
	g.start = p
	g.hasStart = true
}

// Start returns the start cell, or ok=false if none was declared.
func (g *Grid) Start() (core.Position, bool) { return g.start, g.hasStart }

// In reports whether p lies within the grid rectangle.
func (g *Grid) In(p core.Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Passable reports whether p is inside the grid and not a wall.
func (g *Grid) Passable(p core.Position) bool {
	return g.In(p) && !g.wall[p.Row][p.Col]
}

// Actions enumerates the legal moves from p in canonical N,S,E,W order.
// It returns nil for wall or out-of-grid positions.
func (g *Grid) Actions(p core.Position) []core.Action {
	if !g.Passable(p) {
		return nil
	}
	acts := make([]core.Action, 0, 4)
	for _, a := range core.Actions() {
		if g.Passable(a.Apply(p)) {
			acts = append(acts, a)
		}
	}

	return acts
}

// Result resolves taking a from p. It fails with ErrUnknownAction,
// ErrOutside or ErrBlocked when the move was not one Actions(p) would
// have enumerated.
func (g *Grid) Result(p core.Position, a core.Action) (core.Position, error) {
	if !a.Valid() {
		return core.Position{}, fmt.Errorf("%w: %d", ErrUnknownAction, a)
	}
	if !g.Passable(p) {
		return core.Position{}, fmt.Errorf("%w: %v", ErrOutside, p)
	}
	q := a.Apply(p)
	if !g.Passable(q) {
		return core.Position{}, fmt.Errorf("%w: %s from %v", ErrBlocked, a, p)
	}

	return q, nil
}
