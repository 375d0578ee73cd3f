package ds

import (
	"cmp"
	"container/heap"
	"slices"
)

// PriorityQueue keeps its greatest element on top.
type PriorityQueue[T any] struct {
	h prioHeap[T]
}

// NewPriorityQueue returns a max-first priority queue holding items.
func NewPriorityQueue[T cmp.Ordered](items ...T) *PriorityQueue[T] {
	return NewPriorityQueueFunc(cmp.Less[T], items...)
}

// NewPriorityQueueFunc returns a priority queue ordered by less. The element
// for which less reports false against every other element is on top.
func NewPriorityQueueFunc[T any](less func(a, b T) bool, items ...T) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{h: prioHeap[T]{items: slices.Clone(items), less: less}}
	heap.Init(&pq.h)
	return pq
}

// Push inserts values.
func (pq *PriorityQueue[T]) Push(values ...T) {
	for _, v := range values {
		heap.Push(&pq.h, v)
	}
}

// Top returns the greatest element. It panics if the queue is empty.
func (pq *PriorityQueue[T]) Top() T {
	if len(pq.h.items) == 0 {
		panic("ds: Top called on empty PriorityQueue")
	}
	return pq.h.items[0]
}

// Pop removes the greatest element. Popping an empty queue is a no-op.
func (pq *PriorityQueue[T]) Pop() {
	if len(pq.h.items) == 0 {
		return
	}
	heap.Pop(&pq.h)
}

func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h.items) == 0 }

func (pq *PriorityQueue[T]) Len() int { return len(pq.h.items) }

// Clone returns an independent copy.
func (pq *PriorityQueue[T]) Clone() *PriorityQueue[T] {
	return &PriorityQueue[T]{h: prioHeap[T]{items: slices.Clone(pq.h.items), less: pq.h.less}}
}

// prioHeap adapts a slice to container/heap with the order inverted, since
// heap keeps the least element at index 0.
type prioHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h prioHeap[T]) Len() int           { return len(h.items) }
func (h prioHeap[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }
func (h prioHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *prioHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *prioHeap[T]) Pop() any {
	n := len(h.items) - 1
	x := h.items[n]
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
	return x
}
