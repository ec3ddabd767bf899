package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quistella/amaze/core"
	"github.com/quistella/amaze/maze"
)

// sampleAdjacency is a fully consistent 2×2 open square: every cell opens
// toward its declared neighbors and blocks the outward directions.
// Bit order is N,S,E,W with 0=open, 1=blocked.
const sampleAdjacency = `
Start:[0,0]   # A
Goal:[1,1]
[0,0]:1001  # A
[0,1]:1010
[1,0]:0101
[1,1]:0110  # D

Anything without a colon is prose and gets ignored.
`

func mustAdjacency(t *testing.T, in string) *maze.Adjacency {
	t.Helper()
	m, err := maze.ParseAdjacency(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseAdjacency error: %v", err)
	}

	return m
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParseAdjacency_Errors verifies sentinel errors on malformed input.
func TestParseAdjacency_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyMaze},
		{"ProseOnly", "no cells here\n", maze.ErrEmptyMaze},
		{"ShortBits", "[0,0]:101\n", maze.ErrBadLine},
		{"NonBinaryBits", "[0,0]:10a1\n", maze.ErrBadLine},
		{"GarbageDeclaration", "cell: what\n", maze.ErrBadLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseAdjacency(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseAdjacency(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

// TestParseAdjacency_Sample checks cells, endpoints, labels and the
// bracket-less variant of the cell syntax.
func TestParseAdjacency_Sample(t *testing.T) {
	m := mustAdjacency(t, sampleAdjacency)

	if m.Len() != 4 {
		t.Fatalf("Len() = %d; want 4", m.Len())
	}
	if start, ok := m.Start(); !ok || start != pos(0, 0) {
		t.Errorf("Start() = %v, %v; want (0,0), true", start, ok)
	}
	if goal, ok := m.Goal(); !ok || goal != pos(1, 1) {
		t.Errorf("Goal() = %v, %v; want (1,1), true", goal, ok)
	}
	if lab, ok := m.Label(pos(0, 0)); !ok || lab != "A" {
		t.Errorf("Label(0,0) = %q, %v; want \"A\", true", lab, ok)
	}
	if lab, ok := m.Label(pos(1, 1)); !ok || lab != "D" {
		t.Errorf("Label(1,1) = %q, %v; want \"D\", true", lab, ok)
	}
	if _, ok := m.Label(pos(0, 1)); ok {
		t.Error("Label(0,1) present; want none")
	}

	// Bracket-less form parses to the same cell.
	m2 := mustAdjacency(t, "0,0:1001\n0,1:1011\n")
	if m2.Len() != 2 || !m2.In(pos(0, 1)) {
		t.Errorf("bracket-less cells not parsed: Len=%d", m2.Len())
	}
}

//----------------------------------------------------------------------------//
// Model contract
//----------------------------------------------------------------------------//

// TestAdjacency_Actions pins bit semantics: a move needs an open bit AND a
// declared destination cell.
func TestAdjacency_Actions(t *testing.T) {
	m := mustAdjacency(t, sampleAdjacency)

	cases := []struct {
		name string
		at   core.Position
		want []core.Action
	}{
		{"TopLeft", pos(0, 0), []core.Action{core.South, core.East}},
		{"TopRight", pos(0, 1), []core.Action{core.South, core.West}},
		{"BottomLeft", pos(1, 0), []core.Action{core.North, core.East}},
		{"BottomRight", pos(1, 1), []core.Action{core.North, core.West}},
		{"Undeclared", pos(5, 5), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Actions(tc.at)
			if len(got) != len(tc.want) {
				t.Fatalf("Actions(%v) = %v; want %v", tc.at, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Actions(%v)[%d] = %v; want %v", tc.at, i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestAdjacency_Result verifies legal moves and every failure sentinel,
// including the open-bit-into-undeclared-cell case.
func TestAdjacency_Result(t *testing.T) {
	m := mustAdjacency(t, sampleAdjacency)

	next, err := m.Result(pos(0, 0), core.South)
	if err != nil || next != pos(1, 0) {
		t.Fatalf("Result(S) = %v, %v; want (1,0), nil", next, err)
	}

	if _, err = m.Result(pos(0, 0), core.North); !errors.Is(err, maze.ErrBlocked) {
		t.Errorf("blocked bit: err = %v; want ErrBlocked", err)
	}
	if _, err = m.Result(pos(9, 9), core.North); !errors.Is(err, maze.ErrOutside) {
		t.Errorf("undeclared origin: err = %v; want ErrOutside", err)
	}
	if _, err = m.Result(pos(0, 0), core.Action(7)); !errors.Is(err, maze.ErrUnknownAction) {
		t.Errorf("bad action: err = %v; want ErrUnknownAction", err)
	}

	// Open bit leading to an undeclared cell is a contract breach surfaced
	// as ErrOutside (the bit promised passage; the map has no cell there).
	open := mustAdjacency(t, "[0,0]:0000\n[0,1]:1011\n")
	if _, err = open.Result(pos(0, 0), core.North); !errors.Is(err, maze.ErrOutside) {
		t.Errorf("open bit off the map: err = %v; want ErrOutside", err)
	}
}
