// File: methods_clone.go
// Role: Deep copies. Flags, vertices, edges and adjacency are copied so the
// clone can be mutated independently.

package core

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		order:      g.order,
		edges:      make([]Edge, len(g.edges)),
		adj:        make([][]int, len(g.adj)),
	}
	copy(c.edges, g.edges)
	for v, ids := range g.adj {
		c.adj[v] = append([]int(nil), ids...)
	}
	if g.pairs != nil {
		c.pairs = make(map[[2]int]struct{}, len(g.pairs))
		for k := range g.pairs {
			c.pairs[k] = struct{}{}
		}
	}

	return c
}
