package gridgraph

import (
	"slices"

	"github.com/katalvlaran/algokit/pq"
)

type conversionStep struct {
	cell, cost int
}

// ConversionPath finds a walk between two cells that crosses the fewest water
// cells, i.e. the fewest cells that must be filled in to make the whole walk
// land. Water endpoints count toward the cost. Moves follow gg.Conn.
//
// Returns the cells of the walk (both endpoints included) and its cost, or
// ErrOutOfBounds. Any two in-bounds cells are connected once water may be
// converted, so there is no ErrNoPath here.
//
// Steps:
//  1. Seed a min-heap with from, priced by its own conversion cost.
//  2. Pop the cheapest cell; stepping onto land costs 0, onto water 1.
//  3. Stop when to is popped and walk the predecessor links back.
//
// Complexity: O(W·H·d·log(W·H)) time, O(W·H) memory.
func (gg *GridGraph) ConversionPath(from, to Cell) ([]Cell, int, error) {
	if !gg.InBounds(from.X, from.Y) || !gg.InBounds(to.X, to.Y) {
		return nil, 0, ErrOutOfBounds
	}
	n := gg.Width * gg.Height
	cost := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range cost {
		cost[i] = -1
		prev[i] = -1
	}

	src, dst := gg.Index(from), gg.Index(to)
	cost[src] = gg.stepCost(from.X, from.Y)
	q := pq.New(func(a, b conversionStep) bool { return a.cost < b.cost },
		conversionStep{cell: src, cost: cost[src]})
	for q.Len() > 0 {
		s, _ := q.Pop()
		if done[s.cell] {
			continue
		}
		done[s.cell] = true
		if s.cell == dst {
			break
		}
		ux, uy := gg.Coordinate(s.cell)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			if nc := s.cost + gg.stepCost(vx, vy); cost[v] < 0 || nc < cost[v] {
				cost[v] = nc
				prev[v] = s.cell
				q.Push(conversionStep{cell: v, cost: nc})
			}
		}
	}

	var path []Cell
	for at := dst; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		path = append(path, Cell{X: x, Y: y})
	}
	slices.Reverse(path)

	return path, cost[dst], nil
}

// stepCost is 1 for water, 0 for land.
func (gg *GridGraph) stepCost(x, y int) int {
	if gg.IsLand(x, y) {
		return 0
	}

	return 1
}
