package dsu

import "errors"

// ErrContradiction is returned by Relations when a declaration conflicts with
// what is already known.
var ErrContradiction = errors.New("dsu: relation contradicts known facts")

// DSU is a disjoint-set forest over 0..n-1.
type DSU struct {
	parent []int
	rank   []uint8
	size   []int
	count  int
}

// Keyed is a disjoint-set forest over arbitrary comparable keys.
type Keyed[K comparable] struct {
	index map[K]int
	keys  []K
	sets  *DSU
}

// Relations tracks friend and enemy relations between n people.
type Relations struct {
	n    int
	sets *DSU
}
