package flow_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/flow"
)

// Two disjoint routes, each limited by its narrower edge.
//
//	0→1 (3), 1→3 (2)
//	0→2 (2), 2→3 (3)
func ExampleDinic() {
	g := core.NewGraph(4, core.WithDirected(), core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 3)
	_, _ = g.AddEdge(1, 3, 2)
	_, _ = g.AddEdge(0, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)

	res, _ := flow.Dinic(g, 0, 3)
	fmt.Println(res.Value, res.EdgeFlow)
	// Output:
	// 4 [2 2 2 2]
}

func ExampleEdmondsKarp() {
	g := core.NewGraph(3, core.WithDirected(), core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(1, 2, 4)

	res, _ := flow.EdmondsKarp(g, 0, 2)
	fmt.Println(res.Value, res.SourceSide, res.CutEdges(g.Edges()))
	// Output:
	// 4 [0 1] [1]
}
