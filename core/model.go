package core

// Model is the state-transition contract consumed by the search engine.
// A Model is read-only from the engine's perspective: the engine only ever
// calls the methods below, and only with actions the model itself
// enumerated via Actions.
//
// Contracts:
//
//   - Actions(p) enumerates the legal moves from p in canonical N,S,E,W
//     order; it returns nil (or empty) for positions outside the model.
//   - Result(p, a) resolves a legal move to the next position. For a move
//     that Actions(p) did not enumerate it returns a non-nil error; the
//     engine propagates such contract violations instead of hiding them.
//   - StepCost(from, a, to) is the non-negative cost of the transition.
//   - GoalTest(p) decides goal membership. It is NOT required to be
//     equality with Goal(); models with richer goal sets may override it.
//   - Start/Goal report the configured endpoints; the second return is
//     false while the endpoint is still undefined.
type Model interface {
	Start() (Position, bool)
	Goal() (Position, bool)
	Actions(p Position) []Action
	Result(p Position, a Action) (Position, error)
	StepCost(from Position, a Action, to Position) float64
	GoalTest(p Position) bool
}

// UnitCostGoalEquality supplies the default StepCost and GoalTest shared by
// models whose transitions all cost 1 and whose goal is a single cell.
// Embed it by value in a concrete model and keep the goal in sync through
// SetGoal; the embedding model still implements Start, Actions and Result
// itself, so the Model interface is always satisfied in full.
type UnitCostGoalEquality struct {
	goal    Position
	goalSet bool
}

// SetGoal records p as the single goal cell.
func (u *UnitCostGoalEquality) SetGoal(p Position) {
	u.goal = p
	u.goalSet = true
}

// Goal returns the configured goal cell, or ok=false if none was set.
func (u *UnitCostGoalEquality) Goal() (Position, bool) { return u.goal, u.goalSet }

// GoalTest reports whether p equals the configured goal cell.
// While no goal is set, every position fails the test.
func (u *UnitCostGoalEquality) GoalTest(p Position) bool { return u.goalSet && p == u.goal }

// StepCost is the uniform unit cost of every transition.
func (u *UnitCostGoalEquality) StepCost(Position, Action, Position) float64 { return 1 }
