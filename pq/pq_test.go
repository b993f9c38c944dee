package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/pq"
)

func TestQueue_MinMax(t *testing.T) {
	minQ := pq.NewMin(5, 1, 4)
	minQ.Push(2)
	maxQ := pq.NewMax("pear", "apple")
	maxQ.Push("zucchini")

	var got []int
	for minQ.Len() > 0 {
		v, err := minQ.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 4, 5}, got)

	top, err := maxQ.Peek()
	require.NoError(t, err)
	assert.Equal(t, "zucchini", top)
	assert.Equal(t, 3, maxQ.Len())
}

func TestQueue_Empty(t *testing.T) {
	q := pq.NewMin[int]()
	_, err := q.Pop()
	assert.ErrorIs(t, err, pq.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, pq.ErrEmpty)
}

func TestQueue_CustomLess(t *testing.T) {
	type job struct {
		name string
		prio int
	}
	q := pq.New(func(a, b job) bool {
		if a.prio != b.prio {
			return a.prio > b.prio
		}
		return a.name < b.name
	})
	q.Push(job{"b", 1})
	q.Push(job{"a", 1})
	q.Push(job{"c", 3})

	var order []string
	for q.Len() > 0 {
		j, _ := q.Pop()
		order = append(order, j.name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestQueue_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pq.NewMin[int64]()
	var want []int64
	for i := 0; i < 500; i++ {
		v := rng.Int63n(1000) - 500
		q.Push(v)
		want = append(want, v)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	for _, w := range want {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, w, v)
	}
}

func TestMergeCost(t *testing.T) {
	cases := []struct {
		in   []int64
		want int64
	}{
		{nil, 0},
		{[]int64{7}, 0},
		{[]int64{1, 2, 3}, 9},
		{[]int64{1, 2, 3, 4}, 19},
		{[]int64{5, 5, 5, 5}, 40},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pq.MergeCost(tc.in), "%v", tc.in)
	}
	assert.InDelta(t, 4.5, pq.MergeCost([]float64{1.5, 1.5, 0}), 1e-12)
}

func TestMergeCost_DoesNotMutateInput(t *testing.T) {
	in := []int{4, 3, 2, 1}
	_ = pq.MergeCost(in)
	assert.Equal(t, []int{4, 3, 2, 1}, in)
}

func TestMedian(t *testing.T) {
	m := pq.NewMedian()
	_, err := m.Median()
	assert.ErrorIs(t, err, pq.ErrEmpty)

	steps := []struct {
		add  int64
		want float64
	}{
		{12, 12}, {4, 8}, {5, 5}, {3, 4.5}, {8, 5}, {7, 6},
	}
	for _, s := range steps {
		m.Add(s.add)
		got, err := m.Median()
		require.NoError(t, err)
		assert.InDelta(t, s.want, got, 1e-9, "after adding %d", s.add)
	}
	assert.Equal(t, 6, m.Len())
}
