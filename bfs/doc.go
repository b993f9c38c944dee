// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from one or
//     more start vertices (WithSources adds extra starts at depth 0, the
//     "multi-source BFS" used for flood fills and nearest-exit queries).
//   - Returns a BFSResult:
//   - Order: visit sequence
//   - Depth[v]: edges from the nearest start, -1 if unreached
//   - Parent[v]: predecessor in the BFS tree, -1 for starts and unreached
//   - Hooks at three stages: OnEnqueue, OnDequeue and OnVisit (which may
//     abort the walk with an error).
//   - WithFilterNeighbor skips individual arcs; WithMaxDepth bounds the depth.
//
// Edge weights are ignored: BFS counts hops on any graph.
//
// Determinism
//
//	core.Graph.NeighborIDs yields arcs in insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
