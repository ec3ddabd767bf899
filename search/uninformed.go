package search

import (
	"fmt"

	"github.com/quistella/amaze/core"
)

// uninformedWalker holds the mutable state of one BFS or DFS execution.
// The two policies share everything except which end of the frontier is
// popped and the order in which actions are pushed.
type uninformedWalker struct {
	model    core.Model
	opts     Options
	lifo     bool                       // false: FIFO queue (BFS); true: LIFO stack (DFS)
	ar       *arena
	frontier []int                      // arena indices awaiting expansion
	explored map[core.Position]struct{} // positions seen at discovery time
	expanded int
	maxMem   int
}

// runUninformed executes BFS (lifo=false) or DFS (lifo=true) over m.
func runUninformed(m core.Model, opts []Option, lifo bool) (*Result, error) {
	start, _, err := validate(m)
	if err != nil {
		return nil, err
	}

	w := &uninformedWalker{
		model:    m,
		opts:     buildOptions(opts),
		lifo:     lifo,
		ar:       newArena(),
		frontier: make([]int, 0, 64),
		explored: make(map[core.Position]struct{}, 64),
	}

	// Seed with the start node; seeding is a discovery event for the
	// memory metric.
	root := w.ar.add(start, noParent, 0, 0, 0)
	w.frontier = append(w.frontier, root)
	w.explored[start] = struct{}{}
	w.recordMemory()

	return w.loop()
}

// recordMemory samples |frontier| + |explored| and keeps the running max.
func (w *uninformedWalker) recordMemory() {
	if mem := len(w.frontier) + len(w.explored); mem > w.maxMem {
		w.maxMem = mem
	}
}

// pop removes the next node index per policy: front for FIFO, back for LIFO.
func (w *uninformedWalker) pop() int {
	if w.lifo {
		idx := w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]

		return idx
	}
	idx := w.frontier[0]
	w.frontier = w.frontier[1:]

	return idx
}

// loop processes the frontier until the goal is popped or the frontier
// drains. Goal test happens at pop, before expansion.
func (w *uninformedWalker) loop() (*Result, error) {
	for len(w.frontier) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		idx := w.pop()
		n := w.ar.at(idx)
		if w.model.GoalTest(n.state) {
			return &Result{
				Actions:   w.ar.pathTo(idx),
				Cost:      n.g,
				Expanded:  w.expanded,
				MaxMemory: w.maxMem,
				Found:     true,
			}, nil
		}
		w.expanded++
		if err := w.opts.OnExpand(n.state, n.g); err != nil {
			return nil, fmt.Errorf("search: OnExpand error at %v: %w", n.state, err)
		}
		if err := w.expand(idx, n); err != nil {
			return nil, err
		}
	}

	return &Result{Expanded: w.expanded, MaxMemory: w.maxMem}, nil
}

// expand discovers the successors of n. For DFS the enumerated actions are
// pushed in reversed order so that, when popped from the stack, they are
// explored in the originally enumerated order — traversal stays
// deterministic and reproducible across runs.
func (w *uninformedWalker) expand(idx int, n node) error {
	acts := w.model.Actions(n.state)
	if w.lifo {
		for i := len(acts) - 1; i >= 0; i-- {
			if err := w.discover(idx, n, acts[i]); err != nil {
				return err
			}
		}

		return nil
	}
	for _, a := range acts {
		if err := w.discover(idx, n, a); err != nil {
			return err
		}
	}

	return nil
}

// discover resolves one action, dedups at discovery time, and enqueues the
// child. A transition failure on an enumerated action is a model contract
// violation and is propagated wrapped in ErrModelTransition.
func (w *uninformedWalker) discover(idx int, n node, a core.Action) error {
	next, err := w.model.Result(n.state, a)
	if err != nil {
		return fmt.Errorf("%w: action %s from %v: %v", ErrModelTransition, a, n.state, err)
	}
	if _, seen := w.explored[next]; seen {
		return nil
	}
	cost := w.model.StepCost(n.state, a, next)
	child := w.ar.add(next, idx, a, n.g+cost, 0)
	w.explored[next] = struct{}{}
	w.frontier = append(w.frontier, child)
	w.recordMemory()

	return nil
}
