package partitioner

import "container/heap"

// cellItem is one entry in a cellQueue: a refineCell pending further
// splitting, ordered by priority descending (largest gap or new-area
// first). generation records the queue's split epoch at the time
// priority was computed, letting Greedy detect a stale entry (one
// whose marginal contribution changed after a sibling split) without
// re-heapifying the whole queue.
type cellItem struct {
	cell       *refineCell
	priority   float64
	generation int
}

// cellQueue is a max-heap of *cellItem, grounded directly on the
// reference dijkstra package's nodePQ (Len/Less/Swap/Push/Pop), with
// Less flipped so the largest priority — not the smallest distance —
// is popped first.
type cellQueue []*cellItem

var _ heap.Interface = (*cellQueue)(nil)

func (q cellQueue) Len() int { return len(q) }

func (q cellQueue) Less(i, j int) bool { return q[i].priority > q[j].priority }

func (q cellQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(*cellItem)) }

func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
