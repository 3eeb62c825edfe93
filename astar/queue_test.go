package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/grid"
)

// TestNodePQ_OrderAndDecreaseKey checks (f, seq) ordering and that
// heap.Fix re-positions an improved entry.
func TestNodePQ_OrderAndDecreaseKey(t *testing.T) {
	pq := nodePQ{}
	heap.Init(&pq)
	a := &nodeItem{cell: grid.At(0, 0), f: 5, seq: 0}
	b := &nodeItem{cell: grid.At(0, 1), f: 3, seq: 1}
	c := &nodeItem{cell: grid.At(0, 2), f: 3, seq: 2}
	d := &nodeItem{cell: grid.At(0, 3), f: 4, seq: 3}
	for _, it := range []*nodeItem{a, b, c, d} {
		heap.Push(&pq, it)
	}

	// improve a to tie with b and c; its seq keeps it ahead of both
	a.f = 3
	heap.Fix(&pq, a.index)

	var order []grid.Cell
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*nodeItem)
		assert.Equal(t, -1, it.index)
		order = append(order, it.cell)
	}
	assert.Equal(t, []grid.Cell{grid.At(0, 0), grid.At(0, 1), grid.At(0, 2), grid.At(0, 3)}, order)
}
