// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dsu"
)

// validate rejects graphs no MST algorithm accepts.
func validate(graph *core.Graph, needWeights bool) error {
	if graph == nil || graph.Directed() || (needWeights && !graph.Weighted()) {
		return ErrInvalidGraph
	}

	return nil
}

// sortedEdges returns the non-loop edges of graph ordered by weight, ties by ID.
func sortedEdges(graph *core.Graph) []core.Edge {
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	return edges
}

// greedy runs the Kruskal loop over sorted edges, skipping edge ID skip
// (-1 for none) and stopping at the first edge accepted by stop.
func greedy(sets *dsu.DSU, edges []core.Edge, skip int, stop func(core.Edge) bool) ([]core.Edge, int64) {
	var (
		picked []core.Edge
		total  int64
	)
	for _, e := range edges {
		if e.ID == skip {
			continue
		}
		if stop != nil && stop(e) {
			break
		}
		if sets.Union(e.From, e.To) {
			picked = append(picked, e)
			total += e.Weight
			if sets.Count() == 1 {
				break
			}
		}
	}

	return picked, total
}

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph  : graph is nil, directed or unweighted.
//   - ErrDisconnected  : |V| == 0, or the graph is not connected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph, true); err != nil {
		return nil, 0, err
	}
	n := graph.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	sets := dsu.New(n)
	mst, total := greedy(sets, sortedEdges(graph), -1, nil)
	if sets.Count() != 1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, sets.Count())
	}

	return mst, total, nil
}

// Forest computes a minimum spanning forest. Unlike Kruskal it never fails
// on disconnected input and accepts unweighted graphs.
func Forest(graph *core.Graph, opts ...ForestOption) (*ForestResult, error) {
	if err := validate(graph, false); err != nil {
		return nil, err
	}
	cfg := forestConfig{maxWeight: core.Infinity}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := graph.Order()
	sets := dsu.New(n)
	for _, p := range cfg.prejoined {
		if !graph.HasVertex(p[0]) || !graph.HasVertex(p[1]) {
			return nil, fmt.Errorf("%w: prejoined pair %v", core.ErrVertexOutOfRange, p)
		}
		sets.Union(p[0], p[1])
	}

	edges, total := greedy(sets, sortedEdges(graph), -1, func(e core.Edge) bool {
		return e.Weight >= cfg.maxWeight
	})

	return &ForestResult{Edges: edges, Weight: total, Components: sets.Count()}, nil
}

// SecondBest returns the weight of the cheapest spanning tree that is not
// the MST found by Kruskal. Ties with the MST weight are possible when the
// graph has several minimum trees.
func SecondBest(graph *core.Graph) (int64, error) {
	return SecondBestContext(context.Background(), graph)
}

// SecondBestContext is SecondBest with ctx checked before each of the V-1
// Kruskal reruns.
func SecondBestContext(ctx context.Context, graph *core.Graph) (int64, error) {
	mst, _, err := Kruskal(graph)
	if err != nil {
		return 0, err
	}
	n := graph.Order()
	edges := sortedEdges(graph)

	best, found := int64(0), false
	for _, banned := range mst {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		sets := dsu.New(n)
		_, total := greedy(sets, edges, banned.ID, nil)
		if sets.Count() != 1 {
			continue
		}
		if !found || total < best {
			best, found = total, true
		}
	}
	if !found {
		return 0, ErrNoSecondBest
	}

	return best, nil
}
