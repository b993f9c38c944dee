// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors, NeighborIDs and the orientation helper.

package core

import "fmt"

// Neighbors returns the arcs leaving v in insertion order. Undirected edges
// are oriented so that From == v.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	out := make([]Edge, 0, len(g.adj[v]))
	for _, id := range g.adj[v] {
		out = append(out, g.orient(g.edges[id], v))
	}

	return out, nil
}

// NeighborIDs returns the heads of the arcs leaving v; a vertex reached by
// parallel edges is repeated.
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	out := make([]int, 0, len(g.adj[v]))
	for _, id := range g.adj[v] {
		out = append(out, g.orient(g.edges[id], v).To)
	}

	return out, nil
}

// orient returns e as seen from endpoint v.
func (g *Graph) orient(e Edge, v int) Edge {
	if !e.Directed && e.From != v {
		return e.Reverse()
	}

	return e
}
