// File: types.go
// Role: colours, sentinels, options and result type for depth-first search.

package dfs

import (
	"context"
	"errors"
)

// Vertex colours for three-colour marking.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort on cyclic graphs.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort on undirected graphs.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending it to Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits the depth. 0 visits only the start.
	MaxDepth int

	// FilterNeighbor, if non-nil, returns false for arcs that must be skipped.
	FilterNeighbor func(from, to int) bool

	// FullTraversal restarts DFS from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component, not just the start's.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// PreOrder records vertices in discovery order.
	PreOrder []int

	// Order records vertices in the order they finished (post-order).
	Order []int

	// Depth[v] is v's depth in its DFS tree, -1 if not visited.
	Depth []int

	// Parent[v] is the vertex v was discovered from, -1 for roots and unvisited.
	Parent []int

	// SkippedNeighbors counts arcs rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
