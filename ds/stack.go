package ds

import (
	"fmt"
	"iter"
	"slices"
)

// Stack is a last-in first-out container.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items, the last one on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Push adds values in order, so the last one ends up on top.
func (s *Stack[T]) Push(values ...T) { s.items = append(s.items, values...) }

// Top returns the top element. It panics if the stack is empty.
func (s *Stack[T]) Top() T {
	if len(s.items) == 0 {
		panic("ds: Top called on empty Stack")
	}
	return s.items[len(s.items)-1]
}

// Pop removes the top element. Popping an empty stack is a no-op.
func (s *Stack[T]) Pop() {
	if len(s.items) == 0 {
		return
	}
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
}

func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

func (s *Stack[T]) Len() int { return len(s.items) }

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: slices.Clone(s.items)}
}

// Swap exchanges the contents of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) { s.items, other.items = other.items, s.items }

// All yields the elements from bottom to top.
func (s *Stack[T]) All() iter.Seq[T] { return slices.Values(s.items) }

func (s *Stack[T]) String() string { return fmt.Sprintf("Stack(%v)", s.items) }
