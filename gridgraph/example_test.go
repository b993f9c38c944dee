// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/gridgraph"
)

// ExampleGridGraph_ConnectedComponents counts islands on a text map.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.FromStrings([]string{
		"11000",
		"11000",
		"00100",
		"00011",
	}, func(r rune) bool { return r == '1' }, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("islands:", len(comps))
	for i, comp := range comps {
		x, y := gg.Coordinate(comp[0])
		fmt.Printf("island %d: %d cells from (%d,%d)\n", i, len(comp), x, y)
	}
	// Output:
	// islands: 3
	// island 0: 4 cells from (0,0)
	// island 1: 1 cells from (2,2)
	// island 2: 2 cells from (3,3)
}

// ExampleGridGraph_ShortestPath solves a small maze; '#' marks walls.
func ExampleGridGraph_ShortestPath() {
	gg, _ := gridgraph.FromStrings([]string{
		"..#.",
		"#...",
		"..#.",
	}, nil, gridgraph.Conn4)

	steps, err := gg.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 2})
	fmt.Println(steps, err)
	// Output: 5 <nil>
}

// ExampleGridGraph_ConversionPath fills the fewest water cells needed to
// walk from one island to another.
func ExampleGridGraph_ConversionPath() {
	gg, _ := gridgraph.NewGridGraph([][]int{{1, 0, 0, 1}}, gridgraph.DefaultGridOptions())

	path, cost, _ := gg.ConversionPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 0})
	fmt.Printf("Convert %d water cells along %v\n", cost, path)
	// Output:
	// Convert 2 water cells along [{0 0} {1 0} {2 0} {3 0}]
}
