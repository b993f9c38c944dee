// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis, maze shortest paths and minimal-cost “island” bridging.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - FromStrings reads text maps ("#..#", "0110") through a land predicate.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - ShortestPath counts moves between two land cells (plain BFS).
//   - ConversionPath finds the walk needing the fewest water-to-land conversions.
//   - Converts to a *core.Graph for arbitrary graph algorithms.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//   - ConversionPath:      O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell argument lies outside the grid.
//   - ErrNoPath: the target cannot be reached.
package gridgraph
