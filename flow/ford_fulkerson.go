package flow

import "github.com/katalvlaran/algokit/core"

// FordFulkerson computes a maximum flow with depth-first augmenting paths.
// Any path will do, so the number of rounds is bounded by the flow value;
// prefer Dinic when capacities are large.
//
// Complexity: O(E · F) time where F is the flow value, O(V + E) memory.
func FordFulkerson(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	nw, err := prepare(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	var total int64
	for {
		if err := nw.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		pushed := nw.augment(nw.dfsPath())
		if pushed == 0 {
			break
		}
		total += pushed
	}

	return nw.result(total), nil
}

// dfsPath finds any augmenting path with an explicit stack.
func (nw *network) dfsPath() []int {
	via := make([]int, nw.n)
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, nw.n)
	visited[nw.source] = true
	stack := []int{nw.source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == nw.sink {
			break
		}
		for _, a := range nw.out[u] {
			v := nw.head[a]
			if nw.capacity[a] > 0 && !visited[v] {
				visited[v] = true
				via[v] = a
				stack = append(stack, v)
			}
		}
	}

	return via
}
