package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// BellmanFord computes shortest distances from Options.Source.
//
// Steps:
//  1. Up to V-1 relaxation rounds over g.Arcs(), stopping when a round is idle.
//  2. A second phase marks every vertex whose distance can still improve,
//     and everything reachable from it, as NegInf.
//  3. In strict mode any NegInf vertex yields ErrNegativeCycle.
func BellmanFord(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	n := g.Order()
	arcs := g.Arcs()
	res := &Result{
		Source: cfg.Source,
		Dist:   make([]int64, n),
		Prev:   make([]int, n),
		NegInf: make([]bool, n),
	}
	for v := range res.Dist {
		res.Dist[v] = core.Infinity
		res.Prev[v] = -1
	}
	res.Dist[cfg.Source] = 0

	for round := 1; round < n; round++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		changed := false
		for _, e := range arcs {
			du := res.Dist[e.From]
			if du == core.Infinity {
				continue
			}
			if nd := addSat(du, e.Weight); nd < res.Dist[e.To] {
				res.Dist[e.To] = nd
				res.Prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Propagate -∞: a vertex is affected if it can still be relaxed or if an
	// affected vertex reaches it. Each round extends the marking by one arc,
	// so n rounds suffice.
	for round := 0; round < n; round++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		changed := false
		for _, e := range arcs {
			if res.Dist[e.From] == core.Infinity || res.NegInf[e.To] {
				continue
			}
			if res.NegInf[e.From] || addSat(res.Dist[e.From], e.Weight) < res.Dist[e.To] {
				res.NegInf[e.To] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for v, neg := range res.NegInf {
		if neg {
			res.HasNegativeCycle = true
			res.Dist[v] = NegInfinity
			res.Prev[v] = -1
		}
	}
	if cfg.Strict && res.HasNegativeCycle {
		return nil, ErrNegativeCycle
	}

	return res, nil
}

// FindNegativeCycle returns one negative cycle of g as a closed vertex
// sequence v0, v1, …, v0 following arc direction, or ErrNoNegativeCycle.
// Every vertex starts at distance 0, as if a virtual source reached them all.
func FindNegativeCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	arcs := g.Arcs()
	dist := make([]int64, n)
	prev := make([]int, n)
	for v := range prev {
		prev[v] = -1
	}

	last := -1
	for round := 0; round < n; round++ {
		last = -1
		for _, e := range arcs {
			if nd := addSat(dist[e.From], e.Weight); nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = e.From
				last = e.To
			}
		}
		if last == -1 {
			return nil, ErrNoNegativeCycle
		}
	}

	if last == -1 {
		return nil, ErrNoNegativeCycle
	}

	// last was relaxed in round n, so walking back n steps lands on the cycle.
	y := last
	for i := 0; i < n; i++ {
		y = prev[y]
	}
	cycle := []int{y}
	for v := prev[y]; v != y; v = prev[v] {
		cycle = append(cycle, v)
	}
	reverse(cycle)

	return append(cycle, cycle[0]), nil
}

// addSat returns a+b clamped to the int64 range.
func addSat(a, b int64) int64 {
	s := a + b
	if b > 0 && s < a {
		return core.Infinity
	}
	if b < 0 && s > a {
		return NegInfinity
	}

	return s
}
