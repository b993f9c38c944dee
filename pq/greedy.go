package pq

import "golang.org/x/exp/constraints"

// MergeCost returns the minimum total cost of reducing values to a single
// number, where merging a and b costs a+b and yields a+b. Always merging the
// two smallest values is optimal (the Huffman argument).
// Fewer than two values cost nothing.
// Complexity: O(n log n).
func MergeCost[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	if len(values) < 2 {
		return total
	}
	q := NewMin(values...)
	for q.Len() > 1 {
		a, _ := q.Pop()
		b, _ := q.Pop()
		total += a + b
		q.Push(a + b)
	}

	return total
}

// Median maintains the median of a stream of int64 values.
// lo is a max-heap with the smaller half, hi a min-heap with the larger half;
// lo never holds fewer elements than hi and at most one more.
type Median struct {
	lo *Queue[int64]
	hi *Queue[int64]
}

// NewMedian returns an empty running median.
func NewMedian() *Median {
	return &Median{lo: NewMax[int64](), hi: NewMin[int64]()}
}

// Add inserts x. O(log n).
func (m *Median) Add(x int64) {
	if top, err := m.lo.Peek(); err != nil || x <= top {
		m.lo.Push(x)
	} else {
		m.hi.Push(x)
	}
	switch {
	case m.lo.Len() > m.hi.Len()+1:
		v, _ := m.lo.Pop()
		m.hi.Push(v)
	case m.hi.Len() > m.lo.Len():
		v, _ := m.hi.Pop()
		m.lo.Push(v)
	}
}

// Median returns the current median: the middle value for an odd count and
// the mean of the two middle values for an even count.
func (m *Median) Median() (float64, error) {
	lo, err := m.lo.Peek()
	if err != nil {
		return 0, ErrEmpty
	}
	if m.lo.Len() > m.hi.Len() {
		return float64(lo), nil
	}
	hi, _ := m.hi.Peek()

	return (float64(lo) + float64(hi)) / 2, nil
}

// Len returns how many values were added.
func (m *Median) Len() int {
	return m.lo.Len() + m.hi.Len()
}
