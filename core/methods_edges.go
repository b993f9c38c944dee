// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/Arcs/Size.
// Determinism:
//   - Edges() returns edges in insertion (ID) order.
//   - Arcs() lists, per edge in ID order, the forward arc then its mirror.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Reject parallel edges unless WithMultiEdges was given.
//  3. Store the edge and register it in adj[from] (and adj[to] if undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) {
		return -1, fmt.Errorf("%w: from=%d (order %d)", ErrVertexOutOfRange, from, g.order)
	}
	if !g.hasVertex(to) {
		return -1, fmt.Errorf("%w: to=%d (order %d)", ErrVertexOutOfRange, to, g.order)
	}
	if !g.weighted && weight != 0 {
		return -1, ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	if g.pairs != nil {
		key := g.pairKey(from, to)
		if _, dup := g.pairs[key]; dup {
			return -1, fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
		}
		g.pairs[key] = struct{}{}
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight, Directed: g.directed})
	g.adj[from] = append(g.adj[from], id)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], id)
	}

	return id, nil
}

// pairKey normalizes an endpoint pair for the multi-edge guard.
func (g *Graph) pairKey(from, to int) [2]int {
	if !g.directed && to < from {
		from, to = to, from
	}

	return [2]int{from, to}
}

// HasEdge reports whether at least one edge leads from→to. Undirected edges
// are found from either endpoint.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return false
	}
	for _, id := range g.adj[from] {
		if g.orient(g.edges[id], from).To == to {
			return true
		}
	}

	return false
}

// Edges returns a copy of the edge catalog in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Arcs returns the directed view of the graph: directed edges as stored,
// undirected edges as two opposite arcs (loops once). Relaxation-based
// algorithms such as Bellman-Ford iterate this list.
// Complexity: O(E).
func (g *Graph) Arcs() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, 2*len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
		if !e.Directed && e.From != e.To {
			out = append(out, e.Reverse())
		}
	}

	return out
}

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
