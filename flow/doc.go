// Package flow computes maximum flows and minimum cuts on *core.Graph.
//
// Edge weights are capacities. Directed edges carry flow one way; an
// undirected edge of capacity c lets up to c units pass in either
// direction. Unweighted graphs are unit-capacity networks, which is the
// form bipartite matching and edge-disjoint path problems take. Parallel
// edges add up and self-loops are ignored.
//
// Three algorithms share one residual network and one Result:
//
//   - FordFulkerson: depth-first augmenting paths, O(E·F).
//   - EdmondsKarp:   shortest augmenting paths by BFS, O(V·E²).
//   - Dinic:         level graph plus blocking flows, O(V²·E), and
//     O(E·√V) on unit networks.
//
// Besides the flow value, Result reports the net flow on every input edge
// and the source side of a minimum cut.
//
// Errors:
//
//	ErrGraphNil          - nil graph.
//	ErrSourceNotFound    - source outside the graph.
//	ErrSinkNotFound      - sink outside the graph.
//	ErrSourceIsSink      - source == sink.
//	ErrNegativeCapacity  - an edge has negative weight.
//	context errors       - when Options.Ctx is cancelled.
package flow
