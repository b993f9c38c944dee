package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	v    int
	nbrs []int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// start is visited first and every other unvisited vertex then seeds a new
// tree in ascending order.
// Returns the (partial) result together with any cancellation or hook error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &DFSResult{
		PreOrder: make([]int, 0, n),
		Order:    make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if err := w.traverse(start); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Depth[v] < 0 {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	}

	return res, nil
}

// enter discovers v below parent and pushes its frame.
func (w *dfsWalker) enter(v, parent, depth int) error {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.PreOrder = append(w.res.PreOrder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	nbrs, err := w.graph.NeighborIDs(v)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, nbrs: nbrs})

	return nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root, -1, 0); err != nil {
		return err
	}
	ctx := w.opts.Ctx
	for len(w.stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", top.v, err)
				}
			}
			w.res.Order = append(w.res.Order, top.v)
			continue
		}

		u := top.v
		nbr := top.nbrs[top.next]
		top.next++
		if w.res.Depth[nbr] >= 0 {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		depth := w.res.Depth[u] + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		// enter may grow w.stack; top is not used afterwards.
		if err := w.enter(nbr, u, depth); err != nil {
			return err
		}
	}

	return nil
}
