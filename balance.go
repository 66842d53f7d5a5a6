package morph

import (
	"container/heap"
)

// allocation tracks how many parts an item of a balancing problem is divided
// into.
type allocation struct {
	index  int
	weight float64
	count  int
	// last items are only chosen once no other item is left.
	last bool
}

func (a *allocation) key() float64 {
	return a.weight / float64(a.count)
}

// allocQueue is a max-heap of allocations ordered by weight per part. Ties go
// to the lower index, which keeps balancing deterministic.
type allocQueue []*allocation

func (q allocQueue) Len() int { return len(q) }

func (q allocQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.last != b.last {
		return !a.last
	}
	if ka, kb := a.key(), b.key(); ka != kb {
		return ka > kb
	}
	return a.index < b.index
}

func (q allocQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *allocQueue) Push(x any) { *q = append(*q, x.(*allocation)) }

func (q *allocQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return x
}

// allocate distributes extra additional parts over items with the given
// weights. Each extra part goes to the item with the largest weight per part.
// Items flagged in last only receive parts if there are no other items. It
// returns the number of parts per item, each at least 1.
func allocate(weights []float64, last []bool, extra int) []int {
	counts := make([]int, len(weights))
	q := make(allocQueue, len(weights))
	for i, w := range weights {
		counts[i] = 1
		q[i] = &allocation{index: i, weight: w, count: 1, last: last != nil && last[i]}
	}
	if len(q) == 0 {
		return counts
	}
	heap.Init(&q)
	for range extra {
		top := q[0]
		top.count++
		counts[top.index] = top.count
		heap.Fix(&q, 0)
	}
	return counts
}
