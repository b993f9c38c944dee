package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algokit/bellmanford"
	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/flow"
	"github.com/katalvlaran/algokit/internal/apperror"
	"github.com/katalvlaran/algokit/matrix"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

// maxMatrixOrder bounds the all-pairs algorithms, which need O(V²) memory.
const maxMatrixOrder = 2000

type runFunc func(ctx context.Context, g *core.Graph, req *Request, resp *Response) error

type algorithm struct {
	weighted bool // unweighted input is given unit weights
	dense    bool // all-pairs; limited to maxMatrixOrder vertices
	run      runFunc
}

var registry = map[string]algorithm{
	AlgoBFS:           {run: runBFS},
	AlgoDFS:           {run: runDFS},
	AlgoComponents:    {run: runComponents},
	AlgoCycle:         {run: runCycle},
	AlgoToposort:      {run: runToposort},
	AlgoDijkstra:      {weighted: true, run: runDijkstra},
	AlgoBellmanFord:   {weighted: true, run: runBellmanFord},
	AlgoFloydWarshall: {weighted: true, dense: true, run: runFloydWarshall},
	AlgoMinimax:       {weighted: true, dense: true, run: runMinimax},
	AlgoKruskal:       {weighted: true, run: runKruskal},
	AlgoPrim:          {weighted: true, run: runPrim},
	AlgoSecondBestMST: {weighted: true, run: runSecondBest},
	AlgoMaxFlow:       {weighted: true, run: runMaxFlow},
}

// Algorithms lists the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func runBFS(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	res, err := bfs.BFS(g, req.Source, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	resp.Order = res.Order
	resp.Distances = make([]*int64, len(res.Depth))
	for v, d := range res.Depth {
		if d >= 0 {
			resp.Distances[v] = ptr(int64(d))
		}
	}
	if req.Target == nil {
		return nil
	}
	path, err := res.PathTo(*req.Target)
	if err != nil {
		return err
	}
	resp.Path = path
	resp.TotalWeight = ptr(int64(len(path) - 1))

	return nil
}

func runDFS(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	res, err := dfs.DFS(g, req.Source, dfs.WithContext(ctx))
	if err != nil {
		return err
	}
	resp.Order = res.PreOrder
	resp.PostOrder = res.Order
	if req.Target == nil {
		return nil
	}
	t := *req.Target
	if !g.HasVertex(t) {
		return fmt.Errorf("%w: target %d", core.ErrVertexOutOfRange, t)
	}
	if !res.Visited(t) {
		return apperror.New(apperror.CodeNoPath, fmt.Sprintf("vertex %d not reached from %d", t, req.Source))
	}
	path := make([]int, res.Depth[t]+1)
	for i, cur := len(path)-1, t; i >= 0; i, cur = i-1, res.Parent[cur] {
		path[i] = cur
	}
	resp.Path = path

	return nil
}

func runComponents(_ context.Context, g *core.Graph, _ *Request, resp *Response) error {
	resp.Components = dfs.Components(g)
	if resp.Components == nil {
		resp.Components = [][]int{}
	}

	return nil
}

func runCycle(_ context.Context, g *core.Graph, _ *Request, resp *Response) error {
	has, cycle, err := dfs.DetectCycle(g)
	if err != nil {
		return err
	}
	resp.HasCycle = has
	resp.Cycle = cycle

	return nil
}

func runToposort(ctx context.Context, g *core.Graph, _ *Request, resp *Response) error {
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return err
	}
	resp.Order = order

	return nil
}

// runDijkstra reports final distances for every vertex, so the search runs
// to completion even when a target is given.
func runDijkstra(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(req.Source), dijkstra.WithContext(ctx))
	if err != nil {
		return err
	}
	resp.Distances = distances(res.Dist)
	if req.Target == nil {
		return nil
	}
	path, err := res.PathTo(*req.Target)
	if err != nil {
		return err
	}
	resp.Path = path
	resp.TotalWeight = ptr(res.Dist[*req.Target])

	return nil
}

func runBellmanFord(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	res, err := bellmanford.BellmanFord(g, bellmanford.Source(req.Source), bellmanford.WithContext(ctx))
	if err != nil {
		return err
	}
	resp.Distances = distances(res.Dist)
	resp.NegativeCycle = res.HasNegativeCycle
	for v, neg := range res.NegInf {
		if neg {
			resp.NegativeInfinite = append(resp.NegativeInfinite, v)
		}
	}
	if req.Target == nil {
		return nil
	}
	path, err := res.PathTo(*req.Target)
	if err != nil {
		return err
	}
	resp.Path = path
	resp.TotalWeight = ptr(res.Dist[*req.Target])

	return nil
}

// runFloydWarshall reports a negative cycle as a flag rather than an error
// and then omits the matrix, whose entries would be meaningless.
func runFloydWarshall(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	m, err := matrix.FromGraph(g)
	if err != nil {
		return err
	}
	paths, err := matrix.ShortestPaths(m, matrix.WithContext(ctx))
	if errors.Is(err, matrix.ErrNegativeCycle) {
		resp.NegativeCycle = true
		return nil
	}
	if err != nil {
		return err
	}
	resp.Matrix = denseToRows(paths.Distances())
	if req.Target == nil {
		return nil
	}
	path, err := paths.Path(req.Source, *req.Target)
	if err != nil {
		return err
	}
	resp.Path = path
	resp.TotalWeight = resp.Matrix[req.Source][*req.Target]

	return nil
}

func runMinimax(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	m, err := matrix.FromGraph(g)
	if err != nil {
		return err
	}
	if err := matrix.Minimax(m, matrix.WithContext(ctx)); err != nil {
		return err
	}
	resp.Matrix = denseToRows(m)
	if req.Target == nil {
		return nil
	}
	if !g.HasVertex(req.Source) || !g.HasVertex(*req.Target) {
		return fmt.Errorf("%w: %d→%d", core.ErrVertexOutOfRange, req.Source, *req.Target)
	}
	w := resp.Matrix[req.Source][*req.Target]
	if w == nil {
		return fmt.Errorf("%w: %d→%d", matrix.ErrNoPath, req.Source, *req.Target)
	}
	resp.TotalWeight = w

	return nil
}

func runKruskal(_ context.Context, g *core.Graph, _ *Request, resp *Response) error {
	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return err
	}
	resp.MSTEdges = edgeSpecs(edges)
	resp.TotalWeight = ptr(total)

	return nil
}

func runPrim(_ context.Context, g *core.Graph, req *Request, resp *Response) error {
	edges, total, err := prim_kruskal.Prim(g, req.Root)
	if err != nil {
		return err
	}
	resp.MSTEdges = edgeSpecs(edges)
	resp.TotalWeight = ptr(total)

	return nil
}

func runSecondBest(ctx context.Context, g *core.Graph, _ *Request, resp *Response) error {
	total, err := prim_kruskal.SecondBestContext(ctx, g)
	if err != nil {
		return err
	}
	resp.TotalWeight = ptr(total)

	return nil
}

func runMaxFlow(ctx context.Context, g *core.Graph, req *Request, resp *Response) error {
	if req.Target == nil {
		return apperror.NewWithField(apperror.CodeInvalidArgument, "max-flow needs a target (sink)", "target")
	}
	res, err := flow.Dinic(g, req.Source, *req.Target, flow.WithContext(ctx))
	if err != nil {
		return err
	}
	resp.TotalWeight = ptr(res.Value)
	resp.EdgeFlow = res.EdgeFlow
	resp.MinCut = res.SourceSide

	return nil
}

func ptr[T any](v T) *T { return &v }

// distances maps core.Infinity and bellmanford.NegInfinity to null.
func distances(dist []int64) []*int64 {
	out := make([]*int64, len(dist))
	for v, d := range dist {
		if d != core.Infinity && d != bellmanford.NegInfinity {
			out[v] = ptr(d)
		}
	}

	return out
}

func denseToRows(m *matrix.Dense) [][]*int64 {
	n := m.Order()
	rows := make([][]*int64, n)
	for i := range rows {
		rows[i] = make([]*int64, n)
		for j := range rows[i] {
			v, _ := m.At(i, j)
			if !math.IsInf(v, 0) {
				rows[i][j] = ptr(int64(v))
			}
		}
	}

	return rows
}

func edgeSpecs(edges []core.Edge) []EdgeSpec {
	out := make([]EdgeSpec, len(edges))
	for i, e := range edges {
		out[i] = EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}
