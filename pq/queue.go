package pq

import (
	"container/heap"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Pop, Peek and Median when nothing is stored.
var ErrEmpty = errors.New("pq: empty")

// items adapts a slice and a less function to heap.Interface.
type items[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *items[T]) Len() int           { return len(h.data) }
func (h *items[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }
func (h *items[T]) Push(x any)         { h.data = append(h.data, x.(T)) }
func (h *items[T]) Pop() any {
	n := len(h.data) - 1
	x := h.data[n]
	var zero T
	h.data[n] = zero
	h.data = h.data[:n]

	return x
}

// Queue is a priority queue; Pop returns the element for which less
// holds against every other element.
type Queue[T any] struct {
	h *items[T]
}

// New returns a queue ordered by less, optionally seeded with init.
// Complexity: O(len(init)).
func New[T any](less func(a, b T) bool, init ...T) *Queue[T] {
	h := &items[T]{data: append([]T(nil), init...), less: less}
	heap.Init(h)

	return &Queue[T]{h: h}
}

// NewMin returns a queue that pops the smallest value first.
func NewMin[T constraints.Ordered](init ...T) *Queue[T] {
	return New(func(a, b T) bool { return a < b }, init...)
}

// NewMax returns a queue that pops the largest value first.
func NewMax[T constraints.Ordered](init ...T) *Queue[T] {
	return New(func(a, b T) bool { return a > b }, init...)
}

// Push adds x. O(log n).
func (q *Queue[T]) Push(x T) {
	heap.Push(q.h, x)
}

// Pop removes and returns the top element. O(log n).
func (q *Queue[T]) Pop() (T, error) {
	if q.h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(q.h).(T), nil
}

// Peek returns the top element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.h.data[0], nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.h.Len()
}
