package search

import "github.com/quistella/amaze/core"

// noParent marks the root node's parent index in the arena.
const noParent = -1

// node is one point of the search tree. Nodes are created once and never
// mutated; a cheaper path to the same state produces a fresh node, and the
// stale one is skipped at pop time (lazy deletion).
type node struct {
	state  core.Position
	parent int         // arena index of the generating node, or noParent
	action core.Action // action taken from parent; meaningless at the root
	g      float64     // accumulated path cost
	h      float64     // heuristic estimate; 0 for uninformed policies
}

// arena stores search nodes in a growable slice so that parent links are
// plain indices. The parent chain is a tree by construction: a node only
// ever references an index created before it.
type arena struct {
	nodes []node
}

// newArena returns an arena with room for a handful of nodes.
func newArena() *arena {
	return &arena{nodes: make([]node, 0, 64)}
}

// add appends a node and returns its index.
func (ar *arena) add(state core.Position, parent int, action core.Action, g, h float64) int {
	ar.nodes = append(ar.nodes, node{state: state, parent: parent, action: action, g: g, h: h})

	return len(ar.nodes) - 1
}

// at returns the node stored at index i.
func (ar *arena) at(i int) node { return ar.nodes[i] }

// pathTo reconstructs the action sequence from the root to node i by
// walking parent indices, then reversing. The root yields an empty slice.
// Complexity: O(path length).
func (ar *arena) pathTo(i int) []core.Action {
	actions := make([]core.Action, 0, 16)
	for cur := i; ar.nodes[cur].parent != noParent; cur = ar.nodes[cur].parent {
		actions = append(actions, ar.nodes[cur].action)
	}
	for l, r := 0, len(actions)-1; l < r; l, r = l+1, r-1 {
		actions[l], actions[r] = actions[r], actions[l]
	}

	return actions
}
