package flow_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/flow"
)

type maxFlowFunc func(*core.Graph, int, int, ...flow.Option) (*flow.Result, error)

var algorithms = map[string]maxFlowFunc{
	"FordFulkerson": flow.FordFulkerson,
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
}

func build(t *testing.T, n int, directed, weighted bool, edges [][3]int64) *core.Graph {
	t.Helper()
	opts := []core.GraphOption{core.WithMultiEdges(), core.WithLoops()}
	if directed {
		opts = append(opts, core.WithDirected())
	}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(n, opts...)
	for _, e := range edges {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// checkFlow verifies capacity limits and conservation on a directed result.
func checkFlow(t *testing.T, g *core.Graph, res *flow.Result, s, sink int) {
	t.Helper()
	balance := make([]int64, g.Order())
	for _, e := range g.Edges() {
		f := res.EdgeFlow[e.ID]
		if e.Directed {
			assert.GreaterOrEqual(t, f, int64(0), "edge %d", e.ID)
		}
		assert.LessOrEqual(t, max(f, -f), e.Weight, "edge %d", e.ID)
		balance[e.From] -= f
		balance[e.To] += f
	}
	for v, b := range balance {
		switch v {
		case s:
			assert.Equal(t, -res.Value, b)
		case sink:
			assert.Equal(t, res.Value, b)
		default:
			assert.Zero(t, b, "vertex %d", v)
		}
	}
}

func TestMaxFlow_Classic(t *testing.T) {
	// CLRS network, max flow 23.
	edges := [][3]int64{
		{0, 1, 16}, {0, 2, 13}, {1, 2, 10}, {2, 1, 4}, {1, 3, 12},
		{3, 2, 9}, {2, 4, 14}, {4, 3, 7}, {3, 5, 20}, {4, 5, 4},
	}
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := build(t, 6, true, true, edges)
			res, err := fn(g, 0, 5)
			require.NoError(t, err)
			assert.Equal(t, int64(23), res.Value)
			checkFlow(t, g, res, 0, 5)

			var cut int64
			for _, id := range res.CutEdges(g.Edges()) {
				cut += g.Edges()[id].Weight
			}
			assert.Equal(t, res.Value, cut)
			assert.Contains(t, res.SourceSide, 0)
			assert.NotContains(t, res.SourceSide, 5)
		})
	}
}

func TestMaxFlow_Disconnected(t *testing.T) {
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := build(t, 4, true, true, [][3]int64{{0, 1, 5}, {2, 3, 5}})
			res, err := fn(g, 0, 3)
			require.NoError(t, err)
			assert.Zero(t, res.Value)
			assert.Equal(t, []int{0, 1}, res.SourceSide)
		})
	}
}

func TestMaxFlow_Undirected(t *testing.T) {
	// Flow must use 2→1 against the insertion order of edge 1-2.
	edges := [][3]int64{{0, 2, 4}, {1, 2, 3}, {1, 3, 5}, {0, 3, 1}}
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := build(t, 4, false, true, edges)
			res, err := fn(g, 0, 3)
			require.NoError(t, err)
			assert.Equal(t, int64(4), res.Value)
			assert.Equal(t, int64(-3), res.EdgeFlow[1])
			checkFlow(t, g, res, 0, 3)
		})
	}
}

func TestMaxFlow_UnitCapacities(t *testing.T) {
	// Three edge-disjoint paths, one shared vertex.
	edges := [][3]int64{{0, 1, 0}, {0, 2, 0}, {0, 3, 0}, {1, 4, 0}, {2, 4, 0}, {3, 4, 0}, {1, 2, 0}}
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := build(t, 5, true, false, edges)
			res, err := fn(g, 0, 4)
			require.NoError(t, err)
			assert.Equal(t, int64(3), res.Value)
		})
	}
}

func TestMaxFlow_ParallelEdgesAndLoops(t *testing.T) {
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			g := build(t, 2, true, true, [][3]int64{{0, 1, 2}, {0, 1, 3}, {1, 1, 9}, {0, 0, 9}})
			res, err := fn(g, 0, 1)
			require.NoError(t, err)
			assert.Equal(t, int64(5), res.Value)
			assert.Equal(t, []int64{2, 3, 0, 0}, res.EdgeFlow)
		})
	}
}

func TestMaxFlow_Errors(t *testing.T) {
	g := build(t, 3, true, true, [][3]int64{{0, 1, 1}})
	neg := build(t, 2, true, true, [][3]int64{{0, 1, -1}})

	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil, 0, 1)
			assert.ErrorIs(t, err, flow.ErrGraphNil)
			_, err = fn(g, -1, 1)
			assert.ErrorIs(t, err, flow.ErrSourceNotFound)
			_, err = fn(g, 0, 3)
			assert.ErrorIs(t, err, flow.ErrSinkNotFound)
			_, err = fn(g, 1, 1)
			assert.ErrorIs(t, err, flow.ErrSourceIsSink)
			_, err = fn(neg, 0, 1)
			assert.ErrorIs(t, err, flow.ErrNegativeCapacity)
		})
	}
}

func TestMaxFlow_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, 2, true, true, [][3]int64{{0, 1, 1}})
	for name, fn := range algorithms {
		t.Run(name, func(t *testing.T) {
			_, err := fn(g, 0, 1, flow.WithContext(ctx))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestMaxFlow_AgreeOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 30; round++ {
		n := 2 + rng.IntN(10)
		var edges [][3]int64
		for i := rng.IntN(30); i > 0; i-- {
			edges = append(edges, [3]int64{int64(rng.IntN(n)), int64(rng.IntN(n)), int64(rng.IntN(20))})
		}
		directed := rng.IntN(2) == 0
		g := build(t, n, directed, true, edges)

		var want int64 = -1
		for name, fn := range algorithms {
			res, err := fn(g, 0, n-1)
			require.NoError(t, err, name)
			if directed {
				checkFlow(t, g, res, 0, n-1)
			}
			if want < 0 {
				want = res.Value
			}
			assert.Equal(t, want, res.Value, "round %d %s", round, name)
		}

		res, err := flow.Dinic(g, 0, n-1, flow.WithLevelRebuildInterval(1))
		require.NoError(t, err)
		assert.Equal(t, want, res.Value, "round %d rebuild", round)
	}
}
