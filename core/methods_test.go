package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algokit/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, unweighted by default; individual tests may override
	s.g = core.NewGraph(3)
}

func (s *GraphSuite) TestNewGraphOrder() {
	require := require.New(s.T())
	require.Equal(3, s.g.Order())
	require.Equal(0, s.g.Size())
	require.Equal([]int{0, 1, 2}, s.g.Vertices())

	// Negative order collapses to an empty graph
	require.Equal(0, core.NewGraph(-4).Order())
}

func (s *GraphSuite) TestAddVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(3))
	require.Equal(3, s.g.AddVertex())
	require.True(s.g.HasVertex(3))
	require.False(s.g.HasVertex(-1))
	require.Equal(4, s.g.Order())
}

func (s *GraphSuite) TestAddEdgeUndirected() {
	require := require.New(s.T())
	id, err := s.g.AddEdge(0, 1, 0)
	require.NoError(err)
	require.Equal(0, id)
	require.True(s.g.HasEdge(0, 1))
	require.True(s.g.HasEdge(1, 0), "undirected edge visible from both ends")
	require.False(s.g.HasEdge(0, 2))

	d0, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(1, d0)
	d1, _ := s.g.Degree(1)
	require.Equal(1, d1)
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())
	g := core.NewGraph(2, core.WithDirected(), core.WithWeighted())
	_, err := g.AddEdge(0, 1, -7)
	require.NoError(err)
	require.True(g.HasEdge(0, 1))
	require.False(g.HasEdge(1, 0))

	d1, _ := g.Degree(1)
	require.Equal(0, d1)

	// Reverse direction is a distinct pair in directed graphs
	_, err = g.AddEdge(1, 0, 3)
	require.NoError(err)
}

func (s *GraphSuite) TestAddEdgeValidation() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(0, 5, 0)
	require.ErrorIs(err, core.ErrVertexOutOfRange)
	_, err = s.g.AddEdge(-1, 0, 0)
	require.ErrorIs(err, core.ErrVertexOutOfRange)

	_, err = s.g.AddEdge(0, 1, 4)
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge(2, 2, 0)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge(0, 1, 0)
	require.NoError(err)
	_, err = s.g.AddEdge(1, 0, 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed, "undirected pair is unordered")

	require.Equal(1, s.g.Size(), "failed inserts leave the catalog untouched")
}

func (s *GraphSuite) TestMultiEdgesAndLoops() {
	require := require.New(s.T())
	g := core.NewGraph(2, core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge(0, 1, 5)
	require.NoError(err)
	_, err = g.AddEdge(0, 1, 2)
	require.NoError(err)
	_, err = g.AddEdge(1, 1, 1)
	require.NoError(err)

	ids, err := g.NeighborIDs(1)
	require.NoError(err)
	require.Equal([]int{0, 0, 1}, ids)

	// Loop listed once per direction-free edge
	d, _ := g.Degree(1)
	require.Equal(3, d)
	require.Len(g.Arcs(), 5)
}

func (s *GraphSuite) TestNeighborsOriented() {
	require := require.New(s.T())
	g := core.NewGraph(3, core.WithWeighted())
	_, _ = g.AddEdge(0, 2, 9)
	_, _ = g.AddEdge(1, 2, 4)

	nbs, err := g.Neighbors(2)
	require.NoError(err)
	require.Len(nbs, 2)
	for _, e := range nbs {
		require.Equal(2, e.From)
	}
	require.Equal(0, nbs[0].To)
	require.Equal(int64(9), nbs[0].Weight)
	require.Equal(0, nbs[0].ID)
	require.Equal(1, nbs[1].To)

	_, err = g.Neighbors(3)
	require.ErrorIs(err, core.ErrVertexOutOfRange)
}

func (s *GraphSuite) TestEdgesAndArcs() {
	require := require.New(s.T())
	g := core.NewGraph(3, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)

	edges := g.Edges()
	require.Len(edges, 2)
	require.Equal(0, edges[0].ID)
	require.Equal(1, edges[1].ID)

	arcs := g.Arcs()
	require.Len(arcs, 4)
	require.Equal(core.Edge{ID: 0, From: 1, To: 0, Weight: 1}, arcs[1])

	// Edges() is a copy
	edges[0].Weight = 100
	require.Equal(int64(1), g.Edges()[0].Weight)
}

func (s *GraphSuite) TestClone() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge(0, 1, 0)
	c := s.g.Clone()

	_, err := c.AddEdge(1, 2, 0)
	require.NoError(err)
	require.Equal(1, s.g.Size())
	require.Equal(2, c.Size())

	// The multi-edge guard is cloned too
	_, err = c.AddEdge(0, 1, 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	g := core.NewGraph(4, core.WithDirected(), core.WithLoops())
	_, _ = g.AddEdge(3, 3, 0)
	require.Equal(core.GraphStats{
		Order:      4,
		Size:       1,
		Directed:   true,
		AllowsLoop: true,
	}, g.Stats())
	require.True(g.Directed())
	require.False(g.Weighted())
	require.True(g.Looped())
	require.False(g.Multigraph())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
