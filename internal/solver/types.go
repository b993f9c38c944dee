// Package solver runs the algokit algorithms on JSON-described graphs: it
// validates requests against configured limits, caches results by graph
// hash and records metrics, traces and logs for every solve.
package solver

import (
	"github.com/katalvlaran/algokit/internal/apperror"
)

// Algorithm names accepted in Request.Algorithm.
const (
	AlgoBFS           = "bfs"
	AlgoDFS           = "dfs"
	AlgoComponents    = "components"
	AlgoCycle         = "cycle"
	AlgoToposort      = "toposort"
	AlgoDijkstra      = "dijkstra"
	AlgoBellmanFord   = "bellman-ford"
	AlgoFloydWarshall = "floyd-warshall"
	AlgoMinimax       = "minimax"
	AlgoKruskal       = "kruskal"
	AlgoPrim          = "prim"
	AlgoSecondBestMST = "second-best-mst"
	AlgoMaxFlow       = "max-flow"
)

// EdgeSpec is one edge of a request graph.
type EdgeSpec struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight,omitempty"`
}

// GraphSpec describes a graph on vertices 0..Order-1. Weights are ignored
// unless Weighted is set; weight-based algorithms then use 1 per edge.
type GraphSpec struct {
	Order      int        `json:"order"`
	Directed   bool       `json:"directed"`
	Weighted   bool       `json:"weighted"`
	AllowMulti bool       `json:"allow_multi,omitempty"`
	AllowLoops bool       `json:"allow_loops,omitempty"`
	Edges      []EdgeSpec `json:"edges"`
}

// Request asks for one algorithm run. Target is optional; when set, the
// path and its weight are reported.
type Request struct {
	Algorithm string    `json:"algorithm"`
	Graph     GraphSpec `json:"graph"`
	Source    int       `json:"source"`
	Target    *int      `json:"target,omitempty"`
	Root      int       `json:"root"`
}

// Response carries whichever fields the algorithm produces. Unreachable
// entries in Distances and Matrix are null.
type Response struct {
	Algorithm string `json:"algorithm"`

	Distances        []*int64   `json:"distances,omitempty"`
	NegativeInfinite []int      `json:"negative_infinite,omitempty"`
	Matrix           [][]*int64 `json:"matrix,omitempty"`
	Path             []int      `json:"path,omitempty"`
	TotalWeight      *int64     `json:"total_weight,omitempty"`

	Order      []int      `json:"order,omitempty"`
	PostOrder  []int      `json:"post_order,omitempty"`
	Components [][]int    `json:"components,omitempty"`
	Cycle      []int      `json:"cycle,omitempty"`
	MSTEdges   []EdgeSpec `json:"mst_edges,omitempty"`

	// EdgeFlow is indexed like Graph.Edges; MinCut is the source side.
	EdgeFlow []int64 `json:"edge_flow,omitempty"`
	MinCut   []int   `json:"min_cut,omitempty"`

	HasCycle      bool `json:"has_cycle,omitempty"`
	NegativeCycle bool `json:"negative_cycle,omitempty"`
	Cached        bool `json:"cached"`

	ElapsedMS float64 `json:"elapsed_ms"`
}

// BatchResult is the outcome of one request in a batch; exactly one of
// Response and Error is set.
type BatchResult struct {
	Index    int             `json:"index"`
	Response *Response       `json:"response,omitempty"`
	Error    *apperror.Error `json:"error,omitempty"`
}
