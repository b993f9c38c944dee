package core

import (
	"errors"
	"math"
	"sync"
)

// Infinity is the distance reported for vertices that cannot be reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// ID is the insertion index of the edge in its Graph. For undirected graphs
// the values returned by Neighbors and Arcs are oriented copies: From is the
// vertex being expanded and To the opposite endpoint, while ID still names
// the stored edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph (0, 1, 2, …).
	ID int

	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the cost of the edge.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	e.From, e.To = e.To, e.From

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge of the graph one-way.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// adj[v] lists the IDs of the edges leaving v; an undirected edge u—v is
// listed under both u and v (a loop only once). pairs backs the multi-edge
// guard and is nil when parallel edges are allowed.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Storage
	order int
	edges []Edge
	adj   [][]int
	pairs map[[2]int]struct{}
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Order      int
	Size       int
	Directed   bool
	Weighted   bool
	AllowsLoop bool
	AllowsMult bool
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// By default the Graph is undirected, unweighted, without loops or multi-edges.
// A negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		order: n,
		adj:   make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.allowMulti {
		g.pairs = make(map[[2]int]struct{})
	}

	return g
}
