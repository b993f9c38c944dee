package core_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted triangle:
	g := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 0, 0)

	// 2) Inspect it:
	fmt.Println("Order:", g.Order(), "Size:", g.Size())
	fmt.Println("Edge 1→0 exists?", g.HasEdge(1, 0))

	// 3) A second 0—1 edge is rejected:
	_, err := g.AddEdge(1, 0, 0)
	fmt.Println(err)

	// Output:
	// Order: 3 Size: 3
	// Edge 1→0 exists? true
	// core: multi-edges not allowed: 1→0
}

// ExampleGraph_Neighbors shows that undirected arcs are oriented from the
// queried vertex.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(3, core.WithWeighted())
	_, _ = g.AddEdge(0, 2, 7)
	_, _ = g.AddEdge(1, 2, 4)

	nbs, _ := g.Neighbors(2)
	for _, e := range nbs {
		fmt.Printf("%d→%d (%d)\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 2→0 (7)
	// 2→1 (4)
}
