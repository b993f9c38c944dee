// File: api.go
// Role: Read-only getters for the construction-time flags and Stats().
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter takes the read lock.

package core

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a snapshot of configuration flags and catalog sizes.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Order:      g.order,
		Size:       len(g.edges),
		Directed:   g.directed,
		Weighted:   g.weighted,
		AllowsLoop: g.allowLoops,
		AllowsMult: g.allowMulti,
	}
}
