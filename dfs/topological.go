package dfs

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets a context for cancellation of TopologicalSort.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// minInts is a min-heap of vertex IDs.
type minInts []int

func (h minInts) Len() int           { return len(h) }
func (h minInts) Less(i, j int) bool { return h[i] < h[j] }
func (h minInts) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minInts) Push(x any)        { *h = append(*h, x.(int)) }
func (h *minInts) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}

// TopologicalSort returns the lexicographically smallest ordering of g's
// vertices such that every arc u→v places u before v.
//
// Kahn's algorithm: vertices of in-degree zero wait in a min-heap; popping
// one releases its successors. If fewer than V vertices come out, the rest
// lie on or behind a cycle and ErrCycleDetected is returned.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected, context errors.
// Complexity: O((V + E) log V).
func TopologicalSort(g *core.Graph, opts ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := topoOptions{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Order()
	indeg := make([]int, n)
	for _, e := range g.Edges() {
		indeg[e.To]++
	}
	ready := make(minInts, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			ready = append(ready, v)
		}
	}
	heap.Init(&ready)

	order := make([]int, 0, n)
	for ready.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}
		u := heap.Pop(&ready).(int)
		order = append(order, u)
		next, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: NeighborIDs(%d): %w", u, err)
		}
		for _, v := range next {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(&ready, v)
			}
		}
	}
	if len(order) < n {
		return nil, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(order), n)
	}

	return order, nil
}
