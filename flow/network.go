package flow

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algokit/core"
)

// network is the residual graph. Arcs come in pairs: arc a and a^1 are
// each other's reverse, and arc 2k belongs to the k-th stored edge.
type network struct {
	n, source, sink int
	head            []int   // head[a] = vertex arc a points to
	capacity        []int64 // residual capacity of arc a
	initial         []int64 // capacity of arc a before any flow
	out             [][]int // out[v] = arcs leaving v
	edgeArc         []int   // edgeArc[id] = forward arc of input edge id, -1 for loops
	opts            FlowOptions
}

// prepare validates arguments and builds the residual network.
func prepare(g *core.Graph, source, sink int, opts []Option) (*network, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSourceIsSink, source)
	}

	edges := g.Edges()
	nw := &network{
		n:        g.Order(),
		source:   source,
		sink:     sink,
		head:     make([]int, 0, 2*len(edges)),
		capacity: make([]int64, 0, 2*len(edges)),
		out:      make([][]int, g.Order()),
		edgeArc:  make([]int, len(edges)),
		opts:     o,
	}
	unit := !g.Weighted()
	for _, e := range edges {
		c := e.Weight
		if unit {
			c = 1
		}
		if c < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) weight %d", ErrNegativeCapacity, e.ID, e.From, e.To, c)
		}
		if e.From == e.To {
			nw.edgeArc[e.ID] = -1
			continue
		}
		back := int64(0)
		if !e.Directed {
			back = c
		}
		nw.edgeArc[e.ID] = nw.addArcPair(e.From, e.To, c, back)
	}
	nw.initial = slices.Clone(nw.capacity)

	return nw, nil
}

func (nw *network) addArcPair(u, v int, c, back int64) int {
	a := len(nw.head)
	nw.head = append(nw.head, v, u)
	nw.capacity = append(nw.capacity, c, back)
	nw.out[u] = append(nw.out[u], a)
	nw.out[v] = append(nw.out[v], a+1)

	return a
}

func (nw *network) push(a int, f int64) {
	nw.capacity[a] -= f
	nw.capacity[a^1] += f
}

// tail is the vertex arc a leaves.
func (nw *network) tail(a int) int { return nw.head[a^1] }

// result reads the flow off the residual capacities.
func (nw *network) result(value int64) *Result {
	res := &Result{Value: value, EdgeFlow: make([]int64, len(nw.edgeArc))}
	for id, a := range nw.edgeArc {
		if a >= 0 {
			res.EdgeFlow[id] = nw.initial[a] - nw.capacity[a]
		}
	}

	seen := make([]bool, nw.n)
	seen[nw.source] = true
	queue := []int{nw.source}
	for i := 0; i < len(queue); i++ {
		for _, a := range nw.out[queue[i]] {
			if v := nw.head[a]; nw.capacity[a] > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	slices.Sort(queue)
	res.SourceSide = queue

	return res
}

// bfsPath finds a shortest augmenting path and returns, per vertex, the arc
// it was reached by (-1 = unreached).
func (nw *network) bfsPath() []int {
	via := make([]int, nw.n)
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, nw.n)
	visited[nw.source] = true
	queue := []int{nw.source}
	for i := 0; i < len(queue) && !visited[nw.sink]; i++ {
		for _, a := range nw.out[queue[i]] {
			v := nw.head[a]
			if nw.capacity[a] > 0 && !visited[v] {
				visited[v] = true
				via[v] = a
				queue = append(queue, v)
			}
		}
	}

	return via
}

// augment pushes the bottleneck along the path encoded in via and returns
// it, or 0 if the sink was not reached.
func (nw *network) augment(via []int) int64 {
	if via[nw.sink] < 0 {
		return 0
	}
	bottleneck := core.Infinity
	for v := nw.sink; v != nw.source; v = nw.tail(via[v]) {
		bottleneck = min(bottleneck, nw.capacity[via[v]])
	}
	for v := nw.sink; v != nw.source; v = nw.tail(via[v]) {
		nw.push(via[v], bottleneck)
	}

	return bottleneck
}
