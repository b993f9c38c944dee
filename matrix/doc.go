// SPDX-License-Identifier: MIT

// Package matrix provides a square dense matrix and the all-pairs path
// algorithms that run on it.
//
// What:
//
//   - Dense: an n×n row-major float64 matrix with bounds-checked At/Set.
//   - FromGraph: distance matrix of a core.Graph (+Inf = no edge, 0 diagonal,
//     minimum over parallel edges).
//   - FloydWarshall: in-place APSP with fixed k → i → j loop order.
//   - ShortestPaths: APSP plus a next-hop table for path reconstruction.
//   - Semiring variants of the same triple loop:
//     Minimax (minimise the largest edge on a path),
//     Maximin (maximise the smallest edge, "widest path"),
//     MaxProduct/HasArbitrage (best exchange-rate chains),
//     TransitiveClosure (plain reachability).
//   - Diameter: the largest finite shortest distance.
//
// Conventions:
//
//   - +Inf means "no path" in distance and minimax matrices.
//   - -Inf means "no edge" in width matrices (Maximin).
//   - 0 means "no exchange" in rate matrices (MaxProduct).
//   - NaN is rejected by Set.
//
// Complexity: every closure is O(n³) time and O(1) extra space, except
// ShortestPaths which keeps an O(n²) next-hop table.
package matrix
