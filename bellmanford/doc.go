// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm for graphs with negative edge weights.
//
// BellmanFord relaxes every arc of the graph up to V-1 times, stopping early
// when a round changes nothing. It then runs a second relaxation phase that
// propagates "minus infinity": any vertex whose distance can still drop lies
// on, or is reachable from, a negative cycle, and its distance is reported as
// NegInfinity instead of a number.
//
// Undirected edges are relaxed in both directions, so a single undirected
// edge with a negative weight is itself a negative cycle.
//
// FindNegativeCycle answers the other classic question: does the graph
// contain a negative cycle anywhere (not only reachable from a source), and
// which vertices form it.
//
// Complexity: O(V·E) time, O(V) extra space.
package bellmanford
