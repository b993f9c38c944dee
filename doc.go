// Package algokit is a collection of classical graph and search algorithms
// on one integer-vertex graph type, plus a small service that runs them on
// JSON-described graphs.
//
// Library packages:
//
//	core/         - Graph: vertices 0..n-1, weighted/directed/multi/loop options
//	dsu/          - disjoint-set union with path compression and union by rank
//	bfs/, dfs/    - traversals, components, cycle detection, topological order
//	dijkstra/     - single-source shortest paths, non-negative weights
//	bellmanford/  - single-source shortest paths with negative-cycle reporting
//	matrix/       - dense matrices, Floyd-Warshall and minimax all-pairs paths
//	prim_kruskal/ - minimum spanning trees and the second-best spanning tree
//	flow/         - maximum flow (Ford-Fulkerson, Edmonds-Karp, Dinic) and min cut
//	gridgraph/    - 2D grids as graphs
//	trie/         - prefix trees with prefix-conflict and weighted lookups
//	pq/           - generic binary heap and heap-driven greedy schedules
//	bsearch/      - lower/upper bounds and answer-space binary search
//
// Application packages live under internal/ and are driven by cmd/algokit,
// which either solves one graph read from standard input or serves the
// solver over HTTP.
//
// Quick start:
//
//	g := core.NewGraph(4, core.WithDirected(), core.WithWeighted())
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(1, 3, 1)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	path, _ := res.PathTo(3) // [0 1 3]
package algokit
