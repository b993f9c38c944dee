package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// cycleFrame is a DFS stack entry that remembers the edge it came by.
type cycleFrame struct {
	v      int
	via    int // edge ID used to enter v, -1 for roots
	arcs   []core.Edge
	cursor int
}

// DetectCycle reports whether g contains a cycle and returns one of them as
// a closed vertex sequence [v0, v1, ..., vk, v0].
//
// Directed graphs use three-colour marking: an arc into a Gray vertex closes
// a cycle. Undirected graphs do the same but never walk back along the edge
// a vertex was entered by, so a pair of parallel edges is a cycle of length
// two and a self-loop is [v, v].
func DetectCycle(g *core.Graph) (bool, []int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	n := g.Order()
	color := make([]int, n)
	parent := make([]int, n)
	var stack []cycleFrame

	push := func(v, via int) error {
		arcs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		color[v] = Gray
		stack = append(stack, cycleFrame{v: v, via: via, arcs: arcs})

		return nil
	}

	for root := 0; root < n; root++ {
		if color[root] != White {
			continue
		}
		parent[root] = -1
		if err := push(root, -1); err != nil {
			return false, nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor == len(top.arcs) {
				color[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.arcs[top.cursor]
			top.cursor++
			if !e.Directed && e.ID == top.via {
				continue
			}
			switch color[e.To] {
			case White:
				parent[e.To] = top.v
				if err := push(e.To, e.ID); err != nil {
					return false, nil, err
				}
			case Gray:
				return true, unwind(parent, top.v, e.To), nil
			}
		}
	}

	return false, nil, nil
}

// unwind rebuilds the cycle closed by the back arc tail→head.
func unwind(parent []int, tail, head int) []int {
	cycle := []int{head}
	var back []int
	for v := tail; v != head; v = parent[v] {
		back = append(back, v)
	}
	for i := len(back) - 1; i >= 0; i-- {
		cycle = append(cycle, back[i])
	}

	return append(cycle, head)
}
