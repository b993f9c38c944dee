// Package prim_kruskal computes minimum spanning trees and forests on an
// undirected, weighted *core.Graph.
//
// What & Why
//
//   - An MST of a connected, weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with minimal total weight. It is the cheapest way to wire up a
//     network of towns, computers or cities.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Sort all edges by weight (stable, so ties keep insertion order) and add
//     every edge whose endpoints lie in different dsu.DSU sets.
//     Time O(E log E), space O(V + E).
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grow one tree from root with a min-heap of candidate edges.
//     Time O(E log V), space O(V + E).
//
//   - Forest(g, opts...) (*ForestResult, error)
//     Kruskal without the connectivity requirement. WithMaxWeight(w) forbids
//     edges of weight ≥ w (build an airport instead of such a road);
//     WithPrejoined(pairs) seeds the DSU with links that already exist for free.
//
//   - SecondBest(g) (int64, error)
//     Weight of the cheapest spanning tree that differs from the MST in at
//     least one edge. Each MST edge is banned in turn and Kruskal re-run:
//     O(V · E α(V)) after one sort.
//
// Error Conditions
//
//   - ErrInvalidGraph   graph is nil, directed or (for Kruskal/Prim) unweighted.
//   - ErrBadRoot        Prim root is not a vertex.
//   - ErrDisconnected   |V| == 0, or no spanning tree covers every vertex.
//   - ErrUnknownMethod  Compute was given an unknown Method.
//   - ErrNoSecondBest   the MST is the only spanning tree.
//
// Self-loops are ignored; parallel edges are fine (the lighter one wins).
package prim_kruskal
