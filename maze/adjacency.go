package maze

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/quistella/amaze/core"
)

// Adjacency is a maze encoded as per-cell passability bitstrings: each
// declared cell carries four bits in N,S,E,W order, '0' open and '1'
// blocked. Cells that are never declared do not exist — a move is legal
// only when its bit is open AND the destination cell is declared.
// Unit step cost and single-cell goal come from the embedded adapter.
type Adjacency struct {
	core.UnitCostGoalEquality

	cells    map[core.Position][4]bool // blocked[i] per canonical action i
	labels   map[core.Position]string
	start    core.Position
	hasStart bool
}

var (
	cellPat     = regexp.MustCompile(`\[?\s*(\d+)\s*,\s*(\d+)\s*\]?\s*:\s*([01]{4})\s*$`)
	endpointPat = regexp.MustCompile(`(?i)^(start|goal)\s*:\s*\[?\s*(\d+)\s*,\s*(\d+)\s*\]?\s*$`)
)

// ParseAdjacency reads the bitstring maze format, line by line:
//
//	[r,c]:1001        cell (r,c); bits N,S,E,W, 0=open 1=blocked
//	2,3:0000          brackets are optional
//	Start:[r,c]       start declaration (case-insensitive)
//	Goal:[r,c]        goal declaration
//	[r,c]:0110  # A   a trailing comment labels the cell "A"
//
// Text after '#' is a comment; its first token, if any, becomes the cell's
// label. Lines without a ':' are ignored as prose. Lines with a ':' that
// match no form above fail with ErrBadLine. A later declaration for the
// same cell overwrites the earlier one.
//
// Complexity: O(lines) time, O(cells) memory.
func ParseAdjacency(r io.Reader) (*Adjacency, error) {
	m := &Adjacency{
		cells:  make(map[core.Position][4]bool),
		labels: make(map[core.Position]string),
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line, comment, _ := strings.Cut(raw, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sub := endpointPat.FindStringSubmatch(line); sub != nil {
			p := core.Position{Row: atoi(sub[2]), Col: atoi(sub[3])}
			if strings.EqualFold(sub[1], "start") {
				m.start = p
				m.hasStart = true
			} else {
				m.SetGoal(p)
			}
			m.label(p, comment)

			continue
		}

		if sub := cellPat.FindStringSubmatch(line); sub != nil {
			p := core.Position{Row: atoi(sub[1]), Col: atoi(sub[2])}
			var blocked [4]bool
			for i, ch := range sub[3] {
				blocked[i] = ch == '1'
			}
			m.cells[p] = blocked
			m.label(p, comment)

			continue
		}

		if strings.Contains(line, ":") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, raw)
		}
		// prose line, ignored
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading adjacency input: %w", err)
	}
	if len(m.cells) == 0 {
		return nil, ErrEmptyMaze
	}

	return m, nil
}

// label records the first comment token, if any, as the label of p.
func (m *Adjacency) label(p core.Position, comment string) {
	if fields := strings.Fields(comment); len(fields) > 0 {
		m.labels[p] = fields[0]
	}
}

// atoi converts a digits-only regexp capture; the pattern guarantees it
// parses.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}

// Len returns the number of declared cells.
func (m *Adjacency) Len() int { return len(m.cells) }

// Label returns the comment label attached to p, if any.
func (m *Adjacency) Label(p core.Position) (string, bool) {
	l, ok := m.labels[p]

	return l, ok
}

// SetStart overrides the start cell.
func (m *Adjacency) SetStart(p core.Position) {
	m.start = p
	m.hasStart = true
}

// Start returns the start cell, or ok=false if none was declared.
func (m *Adjacency) Start() (core.Position, bool) { return m.start, m.hasStart }

// In reports whether p is a declared cell.
func (m *Adjacency) In(p core.Position) bool {
	_, ok := m.cells[p]

	return ok
}

// Actions enumerates the legal moves from p in canonical N,S,E,W order:
// the move's bit must be open and the destination cell must be declared.
// Undeclared positions yield nil.
func (m *Adjacency) Actions(p core.Position) []core.Action {
	blocked, ok := m.cells[p]
	if !ok {
		return nil
	}
	acts := make([]core.Action, 0, 4)
	for i, a := range core.Actions() {
		if blocked[i] {
			continue
		}
		if m.In(a.Apply(p)) {
			acts = append(acts, a)
		}
	}

	return acts
}

// Result resolves taking a from p. It fails with ErrUnknownAction,
// ErrOutside or ErrBlocked when the move was not one Actions(p) would
// have enumerated.
func (m *Adjacency) Result(p core.Position, a core.Action) (core.Position, error) {
	if !a.Valid() {
		return core.Position{}, fmt.Errorf("%w: %d", ErrUnknownAction, a)
	}
	blocked, ok := m.cells[p]
	if !ok {
		return core.Position{}, fmt.Errorf("%w: %v", ErrOutside, p)
	}
	if blocked[a] {
		return core.Position{}, fmt.Errorf("%w: %s from %v (bit=1)", ErrBlocked, a, p)
	}
	q := a.Apply(p)
	if !m.In(q) {
		return core.Position{}, fmt.Errorf("%w: %s from %v leads to undeclared %v", ErrOutside, a, p, q)
	}

	return q, nil
}
