package gridgraph

import (
	"github.com/katalvlaran/algokit/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// FromStrings builds a grid from text rows such as a maze or a map of
// islands. Runes for which isLand returns true become 1, all others 0.
// A nil isLand treats every rune except '#' (wall) and '0' (water) as land,
// which reads both "#.#" mazes and "0110" island maps.
func FromStrings(lines []string, isLand func(r rune) bool, conn Connectivity) (*GridGraph, error) {
	if isLand == nil {
		isLand = landDefault
	}
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for _, r := range line {
			if isLand(r) {
				row = append(row, 1)
			} else {
				row = append(row, 0)
			}
		}
		values[y] = row
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

func landDefault(r rune) bool {
	return r != '#' && r != '0'
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ToCoreGraph converts the GridGraph into a weighted, undirected *core.Graph.
// Cell (x,y) becomes vertex y*Width+x. Unit-weight edges join neighboring
// land cells according to gg.Conn; water cells stay isolated vertices.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(gg.Width*gg.Height, core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				// each pair once, from its lower index
				if v := gg.index(nx, ny); v > u {
					_, _ = g.AddEdge(u, v, 1)
				}
			}
		}
	}

	return g
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Index returns the row-major index of c, the vertex ID used by ToCoreGraph.
func (gg *GridGraph) Index(c Cell) int {
	return gg.index(c.X, c.Y)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
