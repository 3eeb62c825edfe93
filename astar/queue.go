package astar

import "github.com/katalvlaran/mazepath/grid"

// nodeItem is a frontier entry: a cell, its priority, and the insertion
// sequence used to break priority ties.
type nodeItem struct {
	cell  grid.Cell // frontier cell
	f     int       // g + h
	seq   uint64    // insertion order; smaller wins ties
	index int       // position in the heap, maintained by Swap
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq) ascending.
// Unlike a lazy-decrease-key queue, each cell appears at most once; an
// improved entry is re-positioned with heap.Fix.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their indices in sync.
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x (a *nodeItem) at the end. Called by heap.Push.
func (pq *nodePQ) Push(x any) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
