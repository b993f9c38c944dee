// Package core provides the thread-safe, integer-indexed Graph shared by every
// algorithm package in algokit.
//
// Vertices are the dense integers 0..n-1, which is how graphs arrive from
// judge-style input ("n m" followed by m edge lines) and how distance,
// parent and rank arrays are indexed by the algorithms. Edges carry an int64
// weight and a stable integer ID assigned in insertion order.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    New edges are one-way. Undirected graphs register every edge in the
//	    adjacency of both endpoints.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                        // O(1) amortized, returns the new index
//	HasVertex(v int) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64) (edgeID int, err error) // O(1)†
//	HasEdge(from, to int) bool             // O(deg(from))
//
//	// Query
//	Neighbors(v int) ([]Edge, error)       // arcs oriented out of v, insertion order
//	NeighborIDs(v int) ([]int, error)      // heads of those arcs
//	Vertices() []int                       // 0..n-1
//	Edges() []Edge                         // catalog copy, ID order
//	Arcs() []Edge                          // directed view; undirected edges expanded both ways
//	Degree(v int) (int, error)
//	Order() int / Size() int / Stats() GraphStats
//
//	// Cloning
//	Clone() *Graph                         // O(V+E) deep copy
//
// † amortized: the multi-edge guard is a map lookup.
//
// Errors:
//
//	ErrVertexOutOfRange    – vertex index outside 0..n-1
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Infinity (math.MaxInt64) is the shared "unreachable" distance used by the
// shortest-path packages.
package core
