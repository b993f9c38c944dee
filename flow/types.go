package flow

import (
	"context"
	"errors"

	"github.com/katalvlaran/algokit/core"
)

var (
	ErrGraphNil         = errors.New("flow: graph is nil")
	ErrSourceNotFound   = errors.New("flow: source vertex not found")
	ErrSinkNotFound     = errors.New("flow: sink vertex not found")
	ErrSourceIsSink     = errors.New("flow: source and sink coincide")
	ErrNegativeCapacity = errors.New("flow: negative capacity")
)

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked between augmentations.
//   - LevelRebuildInterval: Dinic only; rebuild the level graph after this
//     many augmentations in one phase (0 = only when blocked).
type FlowOptions struct {
	Ctx                  context.Context
	LevelRebuildInterval int
}

// Option configures FlowOptions.
type Option func(*FlowOptions)

func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) { o.Ctx = ctx }
}

func WithLevelRebuildInterval(n int) Option {
	return func(o *FlowOptions) { o.LevelRebuildInterval = n }
}

// DefaultOptions returns background context and no forced rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

// Result is a maximum flow.
type Result struct {
	// Value is the total flow leaving the source.
	Value int64

	// EdgeFlow[id] is the net flow on input edge id, From→To. It is
	// negative when an undirected edge carries flow To→From.
	EdgeFlow []int64

	// SourceSide lists, ascending, the vertices still reachable from the
	// source in the residual network. The edges leaving this set form a
	// minimum cut.
	SourceSide []int
}

// CutEdges returns the ids of the saturated edges crossing the minimum cut.
func (r *Result) CutEdges(edges []core.Edge) []int {
	in := make(map[int]bool, len(r.SourceSide))
	for _, v := range r.SourceSide {
		in[v] = true
	}
	var cut []int
	for _, e := range edges {
		switch {
		case in[e.From] && !in[e.To]:
			cut = append(cut, e.ID)
		case !e.Directed && in[e.To] && !in[e.From]:
			cut = append(cut, e.ID)
		}
	}

	return cut
}
