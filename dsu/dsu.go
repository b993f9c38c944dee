package dsu

// New returns n singleton sets {0}, {1}, …, {n-1}. A negative n yields an
// empty structure.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Add appends a new singleton set and returns its index.
func (d *DSU) Add() int {
	v := len(d.parent)
	d.parent = append(d.parent, v)
	d.rank = append(d.rank, 0)
	d.size = append(d.size, 1)
	d.count++

	return v
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of x's set.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: point every node on the walk straight at the root.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets holding a and b. It reports false when they were
// already the same set.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Size returns the size of the set holding x.
func (d *DSU) Size(x int) int {
	return d.size[d.Find(x)]
}

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Components returns every set as an ascending slice; sets are ordered by
// their smallest member. Vertices are scanned in ascending order, so both
// orderings come for free.
func (d *DSU) Components() [][]int {
	byRoot := make(map[int]int, d.count)
	out := make([][]int, 0, d.count)
	for v := range d.parent {
		r := d.Find(v)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(out)
			byRoot[r] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], v)
	}
	return out
}
