package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// ctxCheckEvery is how many heap pops pass between cancellation checks.
const ctxCheckEvery = 1024

// Dijkstra computes shortest distances from Options.Source to every vertex of
// the weighted graph g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. Source and Target must be vertices of g (ErrVertexNotFound).
//  5. MaxDistance ≥ 0 and InfEdgeThreshold > 0.
//  6. No edge of g may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
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
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != -1 && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}
	if cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, ErrBadInfThreshold
	}

	// Fail fast on negative weights before any heap work.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev, Settled: r.visited}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to Infinity and seeds the heap with the source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = core.Infinity
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex and relaxes its arcs until the
// heap drains, MaxDistance is exceeded or the target is settled.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for pops := 0; r.pq.Len() > 0; pops++ {
		if pops%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] || item.dist != r.dist[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every head of an arc leaving u.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range arcs {
		v, w := e.To, e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > core.Infinity-du {
			continue // would overflow; cannot beat anything finite
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
