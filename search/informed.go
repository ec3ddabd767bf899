package search

import (
	"container/heap"
	"fmt"

	"github.com/quistella/amaze/core"
)

// informedRunner holds the mutable state of one Greedy or A* execution.
//
// Both policies share the frontier machinery: a min-heap keyed by a
// policy-dependent priority with a monotonic insertion counter as the tie
// break, a best-score map used both for relaxation and for skipping stale
// heap entries at pop time (lazy deletion), and pop-time goal testing.
type informedRunner struct {
	model    core.Model
	opts     Options
	h        Heuristic
	goal     core.Position
	astar    bool                      // false: priority = h (Greedy); true: priority = g + h (A*)
	ar       *arena
	pq       priorityFrontier
	seq      uint64                    // monotonic tie-break counter
	best     map[core.Position]float64 // best recorded score per state
	expanded int
	maxMem   int
}

// runInformed executes Greedy (astar=false) or A* (astar=true) over m.
func runInformed(m core.Model, h Heuristic, opts []Option, astar bool) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	start, goal, err := validate(m)
	if err != nil {
		return nil, err
	}

	r := &informedRunner{
		model: m,
		opts:  buildOptions(opts),
		h:     h,
		goal:  goal,
		astar: astar,
		ar:    newArena(),
		pq:    make(priorityFrontier, 0, 64),
		best:  make(map[core.Position]float64, 64),
	}
	heap.Init(&r.pq)

	// Seed with the start node. For Greedy the recorded score is f=h; for
	// A* it is g, since relaxation compares path costs there.
	h0 := h(start, goal)
	root := r.ar.add(start, noParent, 0, 0, h0)
	if astar {
		r.best[start] = 0
		r.push(root, h0) // f = g + h = 0 + h0
	} else {
		r.best[start] = h0
		r.push(root, h0) // f = h0
	}

	return r.process()
}

// push inserts a heap entry with the next tie-break sequence number and
// samples the memory metric (a push is a discovery event).
func (r *informedRunner) push(idx int, priority float64) {
	heap.Push(&r.pq, pqEntry{node: idx, priority: priority, seq: r.seq})
	r.seq++
	if mem := r.pq.Len() + len(r.best); mem > r.maxMem {
		r.maxMem = mem
	}
}

// stale reports whether a popped entry has been superseded by a cheaper
// entry for the same state. Stale entries are skipped, not removed — the
// lazy-deletion strategy that keeps the heap simple.
func (r *informedRunner) stale(e pqEntry, n node) bool {
	recorded, ok := r.best[n.state]
	if !ok {
		return false
	}
	if r.astar {
		return n.g > recorded
	}

	return e.priority > recorded
}

// process is the main pop-test-expand loop shared by Greedy and A*.
func (r *informedRunner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(pqEntry)
		n := r.ar.at(e.node)
		if r.stale(e, n) {
			continue
		}
		// Goal test at pop time: for A* with an admissible, consistent
		// heuristic the first goal pop is optimal.
		if r.model.GoalTest(n.state) {
			return &Result{
				Actions:   r.ar.pathTo(e.node),
				Cost:      n.g,
				Expanded:  r.expanded,
				MaxMemory: r.maxMem,
				Found:     true,
			}, nil
		}
		r.expanded++
		if err := r.opts.OnExpand(n.state, n.g); err != nil {
			return nil, fmt.Errorf("search: OnExpand error at %v: %w", n.state, err)
		}
		if err := r.relax(e.node, n); err != nil {
			return nil, err
		}
	}

	return &Result{Expanded: r.expanded, MaxMemory: r.maxMem}, nil
}

// relax discovers the successors of n and re-scores states when a strictly
// better score is found: smaller f for Greedy, smaller tentative g for A*.
func (r *informedRunner) relax(idx int, n node) error {
	for _, a := range r.model.Actions(n.state) {
		next, err := r.model.Result(n.state, a)
		if err != nil {
			return fmt.Errorf("%w: action %s from %v: %v", ErrModelTransition, a, n.state, err)
		}
		cost := r.model.StepCost(n.state, a, next)
		g := n.g + cost
		hn := r.h(next, r.goal)

		if r.astar {
			// Standard relaxation on tentative g.
			if recorded, seen := r.best[next]; seen && g >= recorded {
				continue
			}
			r.best[next] = g
			child := r.ar.add(next, idx, a, g, hn)
			r.push(child, g+hn)

			continue
		}

		// Greedy: re-insert only on strictly smaller f = h.
		if recorded, seen := r.best[next]; seen && hn >= recorded {
			continue
		}
		r.best[next] = hn
		child := r.ar.add(next, idx, a, g, hn)
		r.push(child, hn)
	}

	return nil
}
