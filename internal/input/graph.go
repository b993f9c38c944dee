package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/algokit/core"
)

// ErrBadHeader reports a negative vertex or edge count.
var ErrBadHeader = errors.New("input: bad graph header")

// ReadOptions selects how edge lines are interpreted.
type ReadOptions struct {
	OneBased bool // vertices are numbered 1..n
	Directed bool
	Weighted bool // each edge line carries a third weight token
	Multi    bool // allow parallel edges
	Loops    bool // allow self-loops
}

// Edge is one parsed edge line, already shifted to 0-based ids.
type Edge struct {
	From, To int
	Weight   int64
}

// maxPrealloc caps the capacity taken on trust from the header.
const maxPrealloc = 1 << 16

// ReadEdgeList reads "n m" and m lines "u v [w]". Unweighted edges carry
// weight 0, which is what core expects of an unweighted graph.
func ReadEdgeList(t *Tokenizer, opts ReadOptions) (int, []Edge, error) {
	n, err := t.Int()
	if err != nil {
		return 0, nil, fmt.Errorf("read vertex count: %w", err)
	}
	m, err := t.Int()
	if err != nil {
		return 0, nil, fmt.Errorf("read edge count: %w", err)
	}
	if n < 0 || m < 0 {
		return 0, nil, fmt.Errorf("%w: n=%d m=%d", ErrBadHeader, n, m)
	}

	shift := 0
	if opts.OneBased {
		shift = 1
	}
	edges := make([]Edge, 0, min(m, maxPrealloc))
	for i := 0; i < m; i++ {
		u, err := t.Int()
		if err != nil {
			return 0, nil, fmt.Errorf("edge %d: %w", i, err)
		}
		v, err := t.Int()
		if err != nil {
			return 0, nil, fmt.Errorf("edge %d: %w", i, err)
		}
		var w int64
		if opts.Weighted {
			if w, err = t.Int64(); err != nil {
				return 0, nil, fmt.Errorf("edge %d: %w", i, err)
			}
		}
		edges = append(edges, Edge{From: u - shift, To: v - shift, Weight: w})
	}

	return n, edges, nil
}

// ReadGraph parses an edge list from r into a core.Graph.
func ReadGraph(r io.Reader, opts ReadOptions) (*core.Graph, error) {
	n, edges, err := ReadEdgeList(NewTokenizer(r), opts)
	if err != nil {
		return nil, err
	}

	return BuildGraph(n, edges, opts)
}

// BuildGraph adds edges to a fresh graph of order n, stopping at the first
// edge core rejects.
func BuildGraph(n int, edges []Edge, opts ReadOptions) (*core.Graph, error) {
	var gopts []core.GraphOption
	if opts.Directed {
		gopts = append(gopts, core.WithDirected())
	}
	if opts.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if opts.Multi {
		gopts = append(gopts, core.WithMultiEdges())
	}
	if opts.Loops {
		gopts = append(gopts, core.WithLoops())
	}

	g := core.NewGraph(n, gopts...)
	for i, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d (%d-%d): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
