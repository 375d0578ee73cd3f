package ds_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dbg/ds"
)

// drain pops every element through top, returning them in removal order.
func drain[T any](empty func() bool, top func() T, pop func()) []T {
	var out []T
	for !empty() {
		out = append(out, top())
		pop()
	}
	return out
}

func TestStack(t *testing.T) {
	t.Parallel()
	s := ds.NewStack(1, 2)
	s.Push(3, 4)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Top())
	assert.Equal(t, "Stack([1 2 3 4])", s.String())

	got := drain(s.Empty, s.Top, s.Pop)
	if diff := cmp.Diff([]int{4, 3, 2, 1}, got); diff != "" {
		t.Errorf("drain order (-want +got):\n%s", diff)
	}
	assert.True(t, s.Empty())
}

func TestStackEmpty(t *testing.T) {
	t.Parallel()
	s := ds.NewStack[string]()
	assert.True(t, s.Empty())
	assert.NotPanics(t, s.Pop)
	assert.Panics(t, func() { s.Top() })
}

func TestStackClone(t *testing.T) {
	t.Parallel()
	s := ds.NewStack(1, 2, 3)
	c := s.Clone()
	c.Pop()
	c.Push(9)
	if diff := cmp.Diff([]int{1, 2, 3}, slices.Collect(s.All())); diff != "" {
		t.Errorf("original changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 9}, slices.Collect(c.All())); diff != "" {
		t.Errorf("clone (-want +got):\n%s", diff)
	}
}

func TestStackDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	items := []int{1, 2}
	s := ds.NewStack(items...)
	items[0] = 7
	assert.Equal(t, []int{1, 2}, slices.Collect(s.All()))
}

func TestStackSwap(t *testing.T) {
	t.Parallel()
	a, b := ds.NewStack(1), ds.NewStack(2, 3)
	a.Swap(b)
	assert.Equal(t, []int{2, 3}, slices.Collect(a.All()))
	assert.Equal(t, []int{1}, slices.Collect(b.All()))
}

func TestQueue(t *testing.T) {
	t.Parallel()
	q := ds.NewQueue("a")
	q.Push("b", "c")
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.Front())
	assert.Equal(t, "c", q.Back())
	assert.Equal(t, "Queue([a b c])", q.String())

	got := drain(q.Empty, q.Front, q.Pop)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("drain order (-want +got):\n%s", diff)
	}
}

func TestQueueEmpty(t *testing.T) {
	t.Parallel()
	q := ds.NewQueue[int]()
	assert.True(t, q.Empty())
	assert.NotPanics(t, q.Pop)
	assert.Panics(t, func() { q.Front() })
	assert.Panics(t, func() { q.Back() })
}

func TestQueueCloneAndSwap(t *testing.T) {
	t.Parallel()
	q := ds.NewQueue(1, 2)
	c := q.Clone()
	c.Pop()
	assert.Equal(t, []int{1, 2}, slices.Collect(q.All()))
	assert.Equal(t, []int{2}, slices.Collect(c.All()))

	q.Swap(c)
	assert.Equal(t, []int{2}, slices.Collect(q.All()))
	assert.Equal(t, []int{1, 2}, slices.Collect(c.All()))
}

func TestPriorityQueue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		pq   *ds.PriorityQueue[int]
		want []int
	}{
		"max first": {
			pq:   ds.NewPriorityQueue(3, 1, 4, 1, 5),
			want: []int{5, 4, 3, 1, 1},
		},
		"custom order": {
			pq:   ds.NewPriorityQueueFunc(func(a, b int) bool { return a > b }, 3, 1, 4),
			want: []int{1, 3, 4},
		},
		"empty": {
			pq:   ds.NewPriorityQueue[int](),
			want: nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := drain(tt.pq.Empty, tt.pq.Top, tt.pq.Pop)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("drain order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPriorityQueuePushAndClone(t *testing.T) {
	t.Parallel()
	pq := ds.NewPriorityQueue[string]()
	pq.Push("b", "d", "a")
	pq.Push("c")
	require.Equal(t, 4, pq.Len())
	assert.Equal(t, "d", pq.Top())

	c := pq.Clone()
	c.Pop()
	assert.Equal(t, "c", c.Top())
	assert.Equal(t, "d", pq.Top())
	assert.Equal(t, 4, pq.Len())

	assert.NotPanics(t, ds.NewPriorityQueue[int]().Pop)
	assert.Panics(t, func() { ds.NewPriorityQueue[int]().Top() })
}

func TestPair(t *testing.T) {
	t.Parallel()
	p := ds.MakePair("x", 1.5)
	assert.Equal(t, ds.Pair[string, float64]{First: "x", Second: 1.5}, p)
}

func TestAutoList(t *testing.T) {
	t.Parallel()
	l := ds.NewAutoList(func() string { return "-" })
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "-", l.Get(2))
	assert.Equal(t, 3, l.Len())

	l.Set(4, "x")
	assert.Equal(t, []string{"-", "-", "-", "-", "x"}, slices.Collect(l.All()))

	l.Resize(2)
	assert.Equal(t, 5, l.Len())
}

func TestAutoListZeroDefault(t *testing.T) {
	t.Parallel()
	l := ds.NewAutoList[int](nil)
	l.Set(1, 3)
	assert.Equal(t, []int{0, 3}, slices.Collect(l.All()))
	assert.Panics(t, func() { l.Get(-1) })
}

func TestAutoListNested(t *testing.T) {
	t.Parallel()
	grid := ds.NewAutoList(func() *ds.AutoList[int] {
		return ds.NewAutoList(func() int { return 0 })
	})
	grid.Get(1).Set(2, 7)
	assert.Equal(t, 2, grid.Len())
	assert.Equal(t, 0, grid.Get(0).Len())
	assert.Equal(t, []int{0, 0, 7}, slices.Collect(grid.Get(1).All()))
}
