// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Paths is the result of ShortestPaths: the closed distance matrix and a
// next-hop table for route reconstruction.
type Paths struct {
	dist *Dense
	next []int // next[i*n+j] = vertex after i on a shortest i→j path, -1 if none
}

// ShortestPaths runs Floyd–Warshall on a copy of m while recording next hops.
// A negative cycle yields ErrNegativeCycle.
// Complexity: O(n³) time, O(n²) space.
func ShortestPaths(m *Dense, opts ...Option) (*Paths, error) {
	if m == nil {
		return nil, matrixErrorf("ShortestPaths", ErrNilMatrix)
	}
	ctx := buildOptions(opts).Ctx
	d := m.Clone()
	n := d.n
	next := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i*n+j] = j
			case math.IsInf(d.data[i*n+j], 1):
				next[i*n+j] = -1
			default:
				next[i*n+j] = j
			}
		}
	}

	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, matrixErrorf("ShortestPaths", err)
		}
		for i := 0; i < n; i++ {
			ik := d.data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := d.data[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < d.data[i*n+j] {
					d.data[i*n+j] = cand
					next[i*n+j] = next[i*n+k]
				}
			}
		}
	}
	if negativeDiagonal(d) {
		return nil, matrixErrorf("ShortestPaths", ErrNegativeCycle)
	}

	return &Paths{dist: d, next: next}, nil
}

// Distances returns the closed distance matrix. Callers must not modify it.
func (p *Paths) Distances() *Dense { return p.dist }

// Dist returns the shortest distance i→j (+Inf when unreachable).
func (p *Paths) Dist(i, j int) (float64, error) { return p.dist.At(i, j) }

// Path returns the vertex sequence of one shortest i→j path.
func (p *Paths) Path(i, j int) ([]int, error) {
	n := p.dist.n
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("Paths.Path(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if p.next[i*n+j] == -1 {
		return nil, fmt.Errorf("Paths.Path(%d,%d): %w", i, j, ErrNoPath)
	}
	path := []int{i}
	for cur := i; cur != j; {
		cur = p.next[cur*n+j]
		path = append(path, cur)
	}

	return path, nil
}
