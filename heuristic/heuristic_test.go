package heuristic_test

import (
	"math"
	"testing"

	"github.com/quistella/amaze/core"
	"github.com/quistella/amaze/heuristic"
)

func pos(r, c int) core.Position { return core.Position{Row: r, Col: c} }

// TestManhattan checks exact values, symmetry and the zero-at-identity
// property required of an admissible estimate.
func TestManhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Position
		want float64
	}{
		{"Identity", pos(2, 2), pos(2, 2), 0},
		{"SameRow", pos(0, 0), pos(0, 5), 5},
		{"SameCol", pos(1, 3), pos(6, 3), 5},
		{"Diagonal", pos(0, 0), pos(3, 3), 6},
		{"NegativeDeltas", pos(4, 7), pos(1, 2), 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := heuristic.Manhattan(tc.a, tc.b); got != tc.want {
				t.Errorf("Manhattan(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
			if fwd, rev := heuristic.Manhattan(tc.a, tc.b), heuristic.Manhattan(tc.b, tc.a); fwd != rev {
				t.Errorf("Manhattan not symmetric: %v vs %v", fwd, rev)
			}
		})
	}
}

// TestEuclidean checks exact values on Pythagorean triples and symmetry.
func TestEuclidean(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Position
		want float64
	}{
		{"Identity", pos(1, 1), pos(1, 1), 0},
		{"Axis", pos(0, 0), pos(0, 4), 4},
		{"Triple345", pos(0, 0), pos(3, 4), 5},
		{"NegativeTriple", pos(6, 8), pos(0, 0), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := heuristic.Euclidean(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Euclidean(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestEuclideanNeverExceedsManhattan verifies the dominance that makes
// Euclidean admissible wherever Manhattan is: √(dr²+dc²) ≤ |dr|+|dc|.
func TestEuclideanNeverExceedsManhattan(t *testing.T) {
	goal := pos(5, 5)
	for r := -3; r <= 12; r++ {
		for c := -3; c <= 12; c++ {
			p := pos(r, c)
			e, m := heuristic.Euclidean(p, goal), heuristic.Manhattan(p, goal)
			if e > m+1e-12 {
				t.Fatalf("Euclidean(%v) = %v exceeds Manhattan %v", p, e, m)
			}
		}
	}
}
