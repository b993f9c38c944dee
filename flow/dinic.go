package flow

import "github.com/katalvlaran/algokit/core"

// Dinic computes a maximum flow with Dinic's algorithm.
//
// Steps:
//  1. BFS from the source over residual arcs to assign levels.
//  2. If the sink has no level, stop.
//  3. Push blocking flow along arcs that climb exactly one level, keeping a
//     per-vertex cursor so dead arcs are never retried in the same phase.
//  4. Repeat; LevelRebuildInterval may end a phase early.
//
// Complexity: O(V² · E) in general, O(E · √V) on unit-capacity networks.
// Memory: O(V + E).
func Dinic(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	nw, err := prepare(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	level := make([]int, nw.n)
	cursor := make([]int, nw.n)
	var total int64
	for {
		if err := nw.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if !nw.buildLevels(level) {
			break
		}
		clear(cursor)
		for augmentations := 0; ; augmentations++ {
			if err := nw.opts.Ctx.Err(); err != nil {
				return nil, err
			}
			if every := nw.opts.LevelRebuildInterval; every > 0 && augmentations == every {
				break
			}
			pushed := nw.blockingPush(nw.source, core.Infinity, level, cursor)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return nw.result(total), nil
}

// buildLevels fills level with BFS distances and reports whether the sink
// is reachable.
func (nw *network) buildLevels(level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[nw.source] = 0
	queue := []int{nw.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.out[u] {
			if v := nw.head[a]; nw.capacity[a] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[nw.sink] >= 0
}

// blockingPush sends up to limit units from u to the sink along the level
// graph and returns the amount sent.
func (nw *network) blockingPush(u int, limit int64, level, cursor []int) int64 {
	if u == nw.sink {
		return limit
	}
	for ; cursor[u] < len(nw.out[u]); cursor[u]++ {
		a := nw.out[u][cursor[u]]
		v := nw.head[a]
		if nw.capacity[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		if pushed := nw.blockingPush(v, min(limit, nw.capacity[a]), level, cursor); pushed > 0 {
			nw.push(a, pushed)
			return pushed
		}
	}

	return 0
}
