package partitioner

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellQueuePopsLargestPriorityFirst(t *testing.T) {
	q := &cellQueue{}
	heap.Init(q)
	heap.Push(q, &cellItem{priority: 1})
	heap.Push(q, &cellItem{priority: 5})
	heap.Push(q, &cellItem{priority: 3})

	var order []float64
	for q.Len() > 0 {
		item := heap.Pop(q).(*cellItem)
		order = append(order, item.priority)
	}
	require.Equal(t, []float64{5, 3, 1}, order)
}
