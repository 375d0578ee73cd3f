package ds

import (
	"fmt"
	"iter"
	"slices"
)

// Queue is a first-in first-out container.
type Queue[T any] struct {
	items []T
}

// NewQueue returns a queue holding items, the first one in front.
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{items: slices.Clone(items)}
}

// Push appends values to the back.
func (q *Queue[T]) Push(values ...T) { q.items = append(q.items, values...) }

// Front returns the front element. It panics if the queue is empty.
func (q *Queue[T]) Front() T {
	if len(q.items) == 0 {
		panic("ds: Front called on empty Queue")
	}
	return q.items[0]
}

// Back returns the last element. It panics if the queue is empty.
func (q *Queue[T]) Back() T {
	if len(q.items) == 0 {
		panic("ds: Back called on empty Queue")
	}
	return q.items[len(q.items)-1]
}

// Pop removes the front element. Popping an empty queue is a no-op.
func (q *Queue[T]) Pop() {
	if len(q.items) == 0 {
		return
	}
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
}

func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

func (q *Queue[T]) Len() int { return len(q.items) }

// Clone returns an independent copy.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{items: slices.Clone(q.items)}
}

// Swap exchanges the contents of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) { q.items, other.items = other.items, q.items }

// All yields the elements from front to back.
func (q *Queue[T]) All() iter.Seq[T] { return slices.Values(q.items) }

func (q *Queue[T]) String() string { return fmt.Sprintf("Queue(%v)", q.items) }
