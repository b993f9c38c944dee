// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap (container/heap) with lazy decrease-key: improved
//     distances are pushed again and stale entries are skipped when popped.
//   - Distances are int64; core.Infinity marks unreachable vertices.
//
// Key features:
//
//   - Source(v): required starting vertex.
//   - WithTarget(t): stop as soon as t is settled; Result.Settled marks
//     which distances are final, the rest are upper bounds only.
//   - WithMaxDistance(x): vertices farther than x are never settled.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable walls.
//   - WithContext(ctx): the main loop observes cancellation.
//
// Error handling (sentinel errors, checked in this order):
//
//   - ErrNoSource         no Source option was given.
//   - ErrNilGraph         g is nil.
//   - ErrUnweightedGraph  g was not built with core.WithWeighted().
//   - ErrVertexNotFound   the source (or target) is not a vertex of g.
//   - ErrBadMaxDistance   MaxDistance < 0.
//   - ErrBadInfThreshold  InfEdgeThreshold ≤ 0.
//   - ErrNegativeWeight   an edge has a negative weight (O(E) pre-scan).
//
// Result:
//
//	res.Dist[v]      minimal distance, core.Infinity when unreachable
//	res.Prev[v]      predecessor on one shortest path, -1 for source/unreached
//	res.PathTo(v)    source…v, or ErrNoPath
//	res.Reachable(v)
//
// Thread safety:
//
//   - The graph is read through its locked accessors. Mutating it while a run
//     is in progress yields a result for some interleaving of the mutations.
package dijkstra
