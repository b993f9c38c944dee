package prim_kruskal_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

// buildTriangle constructs 0—1 (1), 1—2 (2), 0—2 (3). Its MST weighs 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(3, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and
// edgesCount edges: a chain for connectivity plus seeded random extras.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph(n, core.WithWeighted(), core.WithMultiEdges())
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i-1, i, int64(1+r.Intn(10)))
	}
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(u, v, int64(1+r.Intn(100)))
		added++
	}

	return g
}

func TestMST_Triangle(t *testing.T) {
	g := buildTriangle()
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(method)))
		require.NoError(t, err, method)
		assert.Equal(t, int64(3), total, method)
		assert.Len(t, edges, 2, method)
	}
}

func TestMST_InvalidInputs(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(2, core.WithDirected(), core.WithWeighted()))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Prim(core.NewGraph(2), 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Prim(buildTriangle(), 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrBadRoot)

	_, _, err = prim_kruskal.Compute(buildTriangle(), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMST_TrivialAndDisconnected(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(core.NewGraph(0, core.WithWeighted()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	edges, total, err := prim_kruskal.Prim(core.NewGraph(1, core.WithWeighted()), 0)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	g := core.NewGraph(4, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_LoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(2, core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge(0, 0, -10)
	_, _ = g.AddEdge(0, 1, 8)
	_, _ = g.AddEdge(1, 0, 3)

	_, k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	_, p, err := prim_kruskal.Prim(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), k)
	assert.Equal(t, k, p)
}

func TestMST_PrimMatchesKruskal(t *testing.T) {
	g := buildMediumGraph(200, 1200)
	kEdges, k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	pEdges, p, err := prim_kruskal.Prim(g, 17)
	require.NoError(t, err)
	assert.Equal(t, k, p)
	assert.Len(t, kEdges, 199)
	assert.Len(t, pEdges, 199)
}

func TestForest_Airports(t *testing.T) {
	// Roads costing ≥ airport price (10) are never built.
	g := core.NewGraph(5, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 3)
	_, _ = g.AddEdge(1, 2, 12)
	_, _ = g.AddEdge(2, 3, 4)
	_, _ = g.AddEdge(3, 4, 10)

	res, err := prim_kruskal.Forest(g, prim_kruskal.WithMaxWeight(10))
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Weight)
	assert.Equal(t, 3, res.Components)
	assert.Len(t, res.Edges, 2)
	// total cost = roads + one airport per component
	assert.Equal(t, int64(37), res.Weight+int64(res.Components)*10)
}

func TestForest_Prejoined(t *testing.T) {
	g := buildTriangle()
	res, err := prim_kruskal.Forest(g, prim_kruskal.WithPrejoined([][2]int{{0, 1}}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Weight, "0—1 is already cabled")
	assert.Equal(t, 1, res.Components)

	_, err = prim_kruskal.Forest(g, prim_kruskal.WithPrejoined([][2]int{{0, 9}}))
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = prim_kruskal.Forest(core.NewGraph(2, core.WithDirected()))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestSecondBest(t *testing.T) {
	g := buildTriangle()
	w, err := prim_kruskal.SecondBest(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), w) // {0—1, 0—2}

	// A tree has no alternative.
	path := core.NewGraph(3, core.WithWeighted())
	_, _ = path.AddEdge(0, 1, 1)
	_, _ = path.AddEdge(1, 2, 1)
	_, err = prim_kruskal.SecondBest(path)
	assert.ErrorIs(t, err, prim_kruskal.ErrNoSecondBest)

	// Two minimum trees: the second best equals the best.
	square := core.NewGraph(4, core.WithWeighted())
	for i := 0; i < 4; i++ {
		_, _ = square.AddEdge(i, (i+1)%4, 5)
	}
	w, err = prim_kruskal.SecondBest(square)
	require.NoError(t, err)
	assert.Equal(t, int64(15), w)
}

func TestSecondBestContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := prim_kruskal.SecondBestContext(ctx, buildTriangle())
	assert.ErrorIs(t, err, context.Canceled)

	w, err := prim_kruskal.SecondBestContext(context.Background(), buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
}
