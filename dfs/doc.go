// Package dfs implements depth-first search and the classic algorithms built
// on it for core.Graph: traversal with hooks, connected components, cycle
// detection and topological sorting.
//
// Traversal is iterative (an explicit stack of frames), so graphs shaped
// like a 10⁶-vertex path do not overflow the goroutine stack.
//
// Functions:
//
//	DFS(g, start, opts...)   pre-order, post-order, depth and parent links.
//	Components(g)            connected components (weakly connected for
//	                         directed graphs), each sorted, ordered by
//	                         smallest member.
//	DetectCycle(g)           one cycle as a closed vertex sequence, using
//	                         three-colour marking. Undirected graphs ignore
//	                         the edge a vertex was reached by, so parallel
//	                         edges and self-loops count as cycles.
//	TopologicalSort(g)       Kahn's algorithm with a min-heap: the
//	                         lexicographically smallest valid order.
//
// Options for DFS:
//
//	WithContext(ctx)        cancellation.
//	WithOnVisit(fn)         pre-order hook; an error aborts.
//	WithOnExit(fn)          post-order hook; an error aborts.
//	WithMaxDepth(limit)     vertices deeper than limit are not entered.
//	WithFilterNeighbor(fn)  skip arcs; skips are counted.
//	WithFullTraversal()     restart from every unvisited vertex (forest).
//
// Errors:
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrCycleDetected, ErrNotDirected,
//	context errors, and any hook error.
//
// Complexity: O(V + E) time and O(V) memory for every function except
// TopologicalSort, which adds a log V heap factor.
package dfs
