// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/algokit/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrBadRoot indicates that Prim's root is not a vertex of the graph.
var ErrBadRoot = errors.New("prim_kruskal: root vertex not in graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrNoSecondBest indicates that the graph has exactly one spanning tree.
var ErrNoSecondBest = errors.New("prim_kruskal: no second-best spanning tree")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions returns MSTOptions for Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// ForestOption configures Forest.
type ForestOption func(*forestConfig)

type forestConfig struct {
	maxWeight int64
	prejoined [][2]int
}

// WithMaxWeight forbids edges whose weight is ≥ w.
func WithMaxWeight(w int64) ForestOption {
	return func(c *forestConfig) { c.maxWeight = w }
}

// WithPrejoined marks vertex pairs as already connected at no cost.
func WithPrejoined(pairs [][2]int) ForestOption {
	return func(c *forestConfig) { c.prejoined = append(c.prejoined, pairs...) }
}

// ForestResult is a minimum spanning forest.
type ForestResult struct {
	// Edges added by the algorithm, in ascending weight order.
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight int64

	// Components is the number of trees in the forest, counting prejoined
	// links as connections.
	Components int
}
