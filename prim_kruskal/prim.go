// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed or unweighted.
//   - ErrDisconnected : |V| == 0, or some vertex is unreachable from root.
//   - ErrBadRoot      : root is not a vertex.
//
// Steps:
//  1. Mark root visited and push its arcs.
//  2. Pop the lightest arc; skip it if its head is already in the tree.
//  3. Otherwise add it, mark the head and push the head's arcs.
//  4. Stop at |V|-1 edges; fewer means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	if err := validate(graph, true); err != nil {
		return nil, 0, err
	}
	n := graph.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrBadRoot, root)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(v int) error {
		arcs, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range arcs {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Weight
		if err := push(e.To); err != nil {
			return nil, 0, err
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgePQ is a min-heap of core.Edge ordered by Weight, ties by ID.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].ID < pq[j].ID
}

func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
