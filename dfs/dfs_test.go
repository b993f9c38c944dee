package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(n, core.WithDirected())
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(i, i+1, 0)
	}

	return g
}

// buildDiamond: 0→1, 0→2, 1→3, 2→3, 3→4, 3→5.
func buildDiamond() *core.Graph {
	g := core.NewGraph(6, core.WithDirected())
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected())
	res, err := dfs.DFS(g, 5)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Diamond(t *testing.T) {
	res, err := dfs.DFS(buildDiamond(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 2}, res.PreOrder)
	assert.Equal(t, []int{4, 5, 3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 3}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 1, 3, 3}, res.Parent)
}

func TestDFS_LongChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Order[0])
	assert.Equal(t, n-1, res.Depth[n-1])
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(5), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.PreOrder)
	assert.False(t, res.Visited(3))

	res, err = dfs.DFS(buildChain(5), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(buildDiamond(), 0, dfs.WithFilterNeighbor(func(from, to int) bool {
		return to != 3
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.PreOrder)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph(5)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(3, 4, 0)

	res, err := dfs.DFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.PreOrder)

	res, err = dfs.DFS(g, 3, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 0, 1, 2}, res.PreOrder)
	assert.Equal(t, -1, res.Parent[0])
	for v := 0; v < 5; v++ {
		assert.True(t, res.Visited(v))
	}
}

func TestDFS_HooksAndErrors(t *testing.T) {
	var visits, exits []int
	_, err := dfs.DFS(buildChain(3), 0,
		dfs.WithOnVisit(func(v int) error { visits = append(visits, v); return nil }),
		dfs.WithOnExit(func(v int) error { exits = append(exits, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, visits)
	assert.Equal(t, []int{2, 1, 0}, exits)

	boom := errors.New("boom")
	res, err := dfs.DFS(buildChain(4), 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)

	_, err = dfs.DFS(buildChain(4), 0, dfs.WithOnExit(func(v int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(10), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	assert.Nil(t, dfs.Components(nil))

	g := core.NewGraph(7, core.WithDirected())
	_, _ = g.AddEdge(4, 0, 0)
	_, _ = g.AddEdge(2, 4, 0)
	_, _ = g.AddEdge(5, 6, 0)
	assert.Equal(t, [][]int{{0, 2, 4}, {1}, {3}, {5, 6}}, dfs.Components(g))
	assert.Empty(t, dfs.Components(core.NewGraph(0)))
}

func TestDetectCycle(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, _, err := dfs.DetectCycle(nil)
		assert.ErrorIs(t, err, dfs.ErrGraphNil)
	})
	t.Run("directed acyclic", func(t *testing.T) {
		ok, cyc, err := dfs.DetectCycle(buildDiamond())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, cyc)
	})
	t.Run("directed cycle", func(t *testing.T) {
		g := core.NewGraph(4, core.WithDirected())
		_, _ = g.AddEdge(0, 1, 0)
		_, _ = g.AddEdge(1, 2, 0)
		_, _ = g.AddEdge(2, 3, 0)
		_, _ = g.AddEdge(3, 1, 0)
		ok, cyc, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2, 3, 1}, cyc)
	})
	t.Run("undirected tree", func(t *testing.T) {
		g := core.NewGraph(4)
		_, _ = g.AddEdge(0, 1, 0)
		_, _ = g.AddEdge(1, 2, 0)
		_, _ = g.AddEdge(1, 3, 0)
		ok, _, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("undirected triangle", func(t *testing.T) {
		g := core.NewGraph(3)
		_, _ = g.AddEdge(0, 1, 0)
		_, _ = g.AddEdge(1, 2, 0)
		_, _ = g.AddEdge(2, 0, 0)
		ok, cyc, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{0, 1, 2, 0}, cyc)
	})
	t.Run("parallel edges", func(t *testing.T) {
		g := core.NewGraph(2, core.WithMultiEdges())
		_, _ = g.AddEdge(0, 1, 0)
		_, _ = g.AddEdge(0, 1, 0)
		ok, cyc, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{0, 1, 0}, cyc)
	})
	t.Run("self loop", func(t *testing.T) {
		g := core.NewGraph(3, core.WithLoops())
		_, _ = g.AddEdge(0, 1, 0)
		_, _ = g.AddEdge(2, 2, 0)
		ok, cyc, err := dfs.DetectCycle(g)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{2, 2}, cyc)
	})
}

func TestTopologicalSort(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph(3))
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	order, err := dfs.TopologicalSort(buildDiamond())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)

	g := core.NewGraph(4, core.WithDirected())
	_, _ = g.AddEdge(3, 1, 0)
	_, _ = g.AddEdge(2, 0, 0)
	order, err = dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, order)

	g = buildChain(3)
	_, _ = g.AddEdge(2, 0, 0)
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(buildChain(3), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
