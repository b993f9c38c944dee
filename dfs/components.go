package dfs

import (
	"slices"

	"github.com/katalvlaran/algokit/core"
)

// Components returns the connected components of g. Edge direction is
// ignored, so directed graphs yield their weakly connected components.
// Each component is sorted ascending; components are ordered by their
// smallest vertex. A nil graph has no components.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.Order()
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	seen := make([]bool, n)
	var comps [][]int
	stack := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		comp := []int{s}
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
					stack = append(stack, v)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}
