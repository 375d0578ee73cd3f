package ds

import (
	"iter"
	"slices"
)

// AutoList is a list that grows when an index past its end is read or
// written. New slots are filled by calling the default constructor, so
// nested lists can be built with a single expression:
//
//	grid := ds.NewAutoList(func() *ds.AutoList[int] {
//		return ds.NewAutoList(func() int { return 0 })
//	})
//	grid.Get(1).Set(2, 7)
type AutoList[T any] struct {
	items []T
	def   func() T
}

// NewAutoList returns an empty list whose new slots are produced by def.
// A nil def fills with the zero value.
func NewAutoList[T any](def func() T) *AutoList[T] {
	if def == nil {
		def = func() T {
			var zero T
			return zero
		}
	}
	return &AutoList[T]{def: def}
}

// Resize grows the list to n elements. It never shrinks.
func (l *AutoList[T]) Resize(n int) {
	for len(l.items) < n {
		l.items = append(l.items, l.def())
	}
}

// Get returns the element at i, growing the list first if needed.
// It panics if i is negative.
func (l *AutoList[T]) Get(i int) T {
	l.Resize(i + 1)
	return l.items[i]
}

// Set stores v at i, growing the list first if needed.
// It panics if i is negative.
func (l *AutoList[T]) Set(i int, v T) {
	l.Resize(i + 1)
	l.items[i] = v
}

func (l *AutoList[T]) Len() int { return len(l.items) }

// All yields the elements in index order.
func (l *AutoList[T]) All() iter.Seq[T] { return slices.Values(l.items) }
