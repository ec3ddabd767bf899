package search

// pqEntry pairs an arena node index with its policy-dependent priority and
// a monotonic insertion counter. The counter breaks priority ties in favor
// of the earlier insertion, giving a deterministic total order even though
// the underlying heap is not stable.
type pqEntry struct {
	node     int
	priority float64
	seq      uint64
}

// priorityFrontier is a min-heap of pqEntry ordered by (priority, seq).
// It follows the lazy-deletion pattern: superseded entries stay in the heap
// and are skipped at pop time by comparing against the best recorded score
// for their state. That keeps the heap free of decrease-key machinery.
type priorityFrontier []pqEntry

// Len returns the number of entries in the heap.
func (pq priorityFrontier) Len() int { return len(pq) }

// Less orders by priority ascending, then by insertion sequence ascending.
func (pq priorityFrontier) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two heap entries.
func (pq priorityFrontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *priorityFrontier) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *priorityFrontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
