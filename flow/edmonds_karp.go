package flow

import "github.com/katalvlaran/algokit/core"

// EdmondsKarp computes a maximum flow by repeatedly augmenting along a
// shortest (fewest-arc) residual path.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	nw, err := prepare(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	var total int64
	for {
		if err := nw.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		pushed := nw.augment(nw.bfsPath())
		if pushed == 0 {
			break
		}
		total += pushed
	}

	return nw.result(total), nil
}
