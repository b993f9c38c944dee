package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without the Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo for unreachable vertices.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (required; hasSource records that it was set).
// Target           – optional early-stop vertex; -1 disables it.
// MaxDistance      – optional cap on explored distances. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are non-traversable. Must be > 0.
// Ctx              – cancellation for long runs.
type Options struct {
	Source           int
	Target           int
	MaxDistance      int64
	InfEdgeThreshold int64
	Ctx              context.Context

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. It must always be given.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithTarget stops the search once v has been settled. Vertices settled
// after v are left with partial distances; see Result.Settled.
func WithTarget(v int) Option {
	return func(o *Options) { o.Target = v }
}

// WithMaxDistance stops the search at vertices farther than max.
func WithMaxDistance(max int64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as a wall.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithContext makes the run observe ctx cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the Options used when no option overrides them:
// no source, no target, no distance cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		Target:           -1,
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
		Ctx:              context.Background(),
	}
}

// Result holds the output of a Dijkstra run.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source int

	// Dist[v] is the shortest distance to v when Settled[v] is true. Under
	// WithTarget or WithMaxDistance the search may end early: an unsettled
	// vertex then holds an upper bound, or core.Infinity if it was never
	// discovered, which does not mean it is unreachable.
	Dist []int64

	// Prev[v] is the predecessor of v on the best path found; -1 for the
	// source and for undiscovered vertices.
	Prev []int

	// Settled[v] reports whether Dist[v] is final.
	Settled []bool
}

// Reachable reports whether a path to v was found. Without early-stop
// options this is exact; with them, false only means v was not discovered.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Infinity
}

// IsSettled reports whether Dist[v] is the true shortest distance.
func (r *Result) IsSettled(v int) bool {
	return v >= 0 && v < len(r.Settled) && r.Settled[v]
}

// PathTo rebuilds the vertex sequence Source…v by following Prev.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, ErrVertexNotFound
	}
	if r.Dist[v] == core.Infinity {
		return nil, ErrNoPath
	}
	var path []int
	for cur := v; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
