// Package dsu implements disjoint-set union (union-find) structures.
//
// Three flavours are provided:
//
//	DSU        – sets over the dense indices 0..n-1, union by rank with
//	             iterative path compression. Amortized O(α(n)) per call.
//	Keyed[K]   – the same structure over arbitrary comparable keys; unseen
//	             keys are registered on first use. Union reports the size of
//	             the merged set, which is what friendship-network style
//	             queries ask for.
//	Relations  – friend/enemy bookkeeping. Element i is paired with a shadow
//	             i+n standing for "the enemies of i", so enemy-of-enemy and
//	             friend-of-enemy rules fall out of ordinary unions.
//
// Indices are not bounds-checked beyond Go's own slice checks: passing an
// index outside 0..n-1 to DSU or Relations panics, as indexing a slice would.
//
// None of the types are safe for concurrent mutation.
package dsu
