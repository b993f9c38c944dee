package bellmanford

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/algokit/core"
)

// NegInfinity is the distance reported for vertices affected by a negative cycle.
const NegInfinity int64 = math.MinInt64

var (
	// ErrNoSource indicates that BellmanFord was called without the Source option.
	ErrNoSource = errors.New("bellmanford: source vertex not set")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates a source outside the graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")

	// ErrNegativeCycle is returned in strict mode when a negative cycle is
	// reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrUnreachable is returned by PathTo for vertices the source cannot reach.
	ErrUnreachable = errors.New("bellmanford: vertex unreachable")

	// ErrNegativeCycleAffected is returned by PathTo for vertices whose
	// distance is unbounded below.
	ErrNegativeCycleAffected = errors.New("bellmanford: vertex affected by negative cycle")

	// ErrNoNegativeCycle is returned by FindNegativeCycle when none exists.
	ErrNoNegativeCycle = errors.New("bellmanford: no negative cycle")
)

// Options configures BellmanFord.
type Options struct {
	Source int
	Strict bool
	Ctx    context.Context

	hasSource bool
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the starting vertex. It must always be given.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithStrict makes BellmanFord fail with ErrNegativeCycle instead of
// reporting NegInfinity distances.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithContext makes the run observe ctx cancellation between rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns non-strict options without a source.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result holds the output of a BellmanFord run.
type Result struct {
	Source int

	// Dist[v] is the shortest distance, core.Infinity when unreachable and
	// NegInfinity when v is affected by a negative cycle.
	Dist []int64

	// Prev[v] is v's predecessor on a shortest path, -1 when there is none.
	Prev []int

	// NegInf[v] marks vertices affected by a negative cycle.
	NegInf []bool

	// HasNegativeCycle reports whether any negative cycle is reachable from Source.
	HasNegativeCycle bool
}

// Reachable reports whether v is reachable from the source (including
// through a negative cycle).
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Infinity
}

// PathTo returns Source…v along Prev.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, ErrVertexNotFound
	}
	if r.NegInf[v] {
		return nil, ErrNegativeCycleAffected
	}
	if r.Dist[v] == core.Infinity {
		return nil, ErrUnreachable
	}
	var path []int
	for cur := v; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	reverse(path)

	return path, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
