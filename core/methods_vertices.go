// File: methods_vertices.go
// Role: Vertex lifecycle and per-vertex queries.
// Determinism:
//   - Vertices() returns 0..n-1 in ascending order.

package core

import "fmt"

// AddVertex appends an isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)
	g.order++

	return g.order - 1
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// hasVertex is HasVertex without locking; callers hold g.mu.
func (g *Graph) hasVertex(v int) bool {
	return v >= 0 && v < g.order
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order
}

// Vertices returns the vertex indices 0..n-1.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.order)
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of arcs leaving v. For undirected graphs this is
// the usual degree, with a self-loop counted once.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return len(g.adj[v]), nil
}
