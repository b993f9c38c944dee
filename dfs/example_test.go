package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// ExampleDFS demonstrates a depth-first traversal on a diamond-shaped graph.
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g := core.NewGraph(6, core.WithDirected())
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pre: ", res.PreOrder)
	fmt.Println("post:", res.Order)
	// Output:
	// pre:  [0 1 3 4 5 2]
	// post: [4 5 3 1 2 0]
}

// ExampleTopologicalSort orders course prerequisites.
func ExampleTopologicalSort() {
	g := core.NewGraph(5, core.WithDirected())
	_, _ = g.AddEdge(4, 1, 0)
	_, _ = g.AddEdge(1, 0, 0)
	_, _ = g.AddEdge(3, 0, 0)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [2 3 4 1 0]
}

// ExampleDetectCycle finds a cycle in an undirected graph.
func ExampleDetectCycle() {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 3, 0)
	_, _ = g.AddEdge(3, 1, 0)

	ok, cycle, _ := dfs.DetectCycle(g)
	fmt.Println(ok, cycle)
	// Output: true [1 2 3 1]
}
