// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/matrix"
)

// ExampleShortestPaths converts a graph to a distance matrix and prints one
// route.
func ExampleShortestPaths() {
	g := core.NewGraph(4, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(0, 2, 7)
	_, _ = g.AddEdge(2, 3, 2)

	m, _ := matrix.FromGraph(g)
	p, err := matrix.ShortestPaths(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := p.Dist(0, 3)
	path, _ := p.Path(0, 3)
	fmt.Println(d, path)

	// Output:
	// 7 [0 1 2 3]
}
