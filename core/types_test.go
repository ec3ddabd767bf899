package core_test

import (
	"testing"

	"github.com/quistella/amaze/core"
)

// TestActionDeltas verifies the compass semantics of every action.
func TestActionDeltas(t *testing.T) {
	cases := []struct {
		act    core.Action
		name   string
		dr, dc int
	}{
		{core.North, "N", -1, 0},
		{core.South, "S", 1, 0},
		{core.East, "E", 0, 1},
		{core.West, "W", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.act.String(); got != tc.name {
				t.Errorf("String() = %q; want %q", got, tc.name)
			}
			dr, dc := tc.act.Delta()
			if dr != tc.dr || dc != tc.dc {
				t.Errorf("Delta() = (%d,%d); want (%d,%d)", dr, dc, tc.dr, tc.dc)
			}
			if !tc.act.Valid() {
				t.Errorf("Valid() = false; want true")
			}
		})
	}
}

// TestActionApply checks that Apply offsets a position without bounds checks.
func TestActionApply(t *testing.T) {
	p := core.Position{Row: 2, Col: 3}
	if got := core.North.Apply(p); got != (core.Position{Row: 1, Col: 3}) {
		t.Errorf("North.Apply = %v", got)
	}
	if got := core.East.Apply(p); got != (core.Position{Row: 2, Col: 4}) {
		t.Errorf("East.Apply = %v", got)
	}
}

// TestActionOutOfRange covers the defensive behavior of an invalid value.
func TestActionOutOfRange(t *testing.T) {
	bad := core.Action(42)
	if bad.Valid() {
		t.Error("Valid() = true for out-of-range action")
	}
	if got := bad.String(); got != "?" {
		t.Errorf("String() = %q; want %q", got, "?")
	}
	if dr, dc := bad.Delta(); dr != 0 || dc != 0 {
		t.Errorf("Delta() = (%d,%d); want (0,0)", dr, dc)
	}
}

// TestActionsCanonicalOrder pins the N,S,E,W enumeration order that every
// model and traversal relies on for reproducibility.
func TestActionsCanonicalOrder(t *testing.T) {
	want := []core.Action{core.North, core.South, core.East, core.West}
	got := core.Actions()
	if len(got) != len(want) {
		t.Fatalf("Actions() returned %d actions; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestUnitCostGoalEquality exercises the embeddable adapter directly.
func TestUnitCostGoalEquality(t *testing.T) {
	var u core.UnitCostGoalEquality

	if _, ok := u.Goal(); ok {
		t.Error("Goal() ok = true before SetGoal")
	}
	if u.GoalTest(core.Position{}) {
		t.Error("GoalTest passed while no goal is set")
	}

	goal := core.Position{Row: 3, Col: 3}
	u.SetGoal(goal)
	if got, ok := u.Goal(); !ok || got != goal {
		t.Errorf("Goal() = %v, %v; want %v, true", got, ok, goal)
	}
	if !u.GoalTest(goal) {
		t.Error("GoalTest(goal) = false")
	}
	if u.GoalTest(core.Position{Row: 3, Col: 2}) {
		t.Error("GoalTest accepted a non-goal position")
	}
	if got := u.StepCost(core.Position{}, core.North, goal); got != 1 {
		t.Errorf("StepCost = %v; want 1", got)
	}
}
