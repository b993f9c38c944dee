// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - +Inf means "no path"; the diagonal should be 0 before calling.

package matrix

import (
	"context"
	"math"
)

const (
	opFloydWarshall    = "FloydWarshall"
	opHasNegativeCycle = "HasNegativeCycle"
)

// floydWarshallInPlace runs the APSP closure on d.
// Loop order is fixed (k → i → j) for deterministic accumulation.
// A done ctx leaves d partially closed.
func floydWarshallInPlace(ctx context.Context, d *Dense) error {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// The closure is always completed. If a negative cycle exists the affected
// entries are meaningless and ErrNegativeCycle is returned.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *Dense, opts ...Option) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if err := floydWarshallInPlace(buildOptions(opts).Ctx, m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if negativeDiagonal(m) {
		return matrixErrorf(opFloydWarshall, ErrNegativeCycle)
	}

	return nil
}

// HasNegativeCycle reports whether the closure of m has a negative diagonal
// entry. m itself is left untouched.
// Complexity: O(n³).
func HasNegativeCycle(m *Dense) (bool, error) {
	if m == nil {
		return false, matrixErrorf(opHasNegativeCycle, ErrNilMatrix)
	}
	c := m.Clone()
	_ = floydWarshallInPlace(context.Background(), c)

	return negativeDiagonal(c), nil
}

func negativeDiagonal(m *Dense) bool {
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] < 0 {
			return true
		}
	}

	return false
}

// Diameter returns the largest finite shortest-path distance between two
// distinct vertices of the distance matrix m (0 when no such pair exists).
// m is not modified.
func Diameter(m *Dense) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("Diameter", ErrNilMatrix)
	}
	c := m.Clone()
	_ = floydWarshallInPlace(context.Background(), c)
	if negativeDiagonal(c) {
		return 0, matrixErrorf("Diameter", ErrNegativeCycle)
	}

	var best float64
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			if v := c.data[i*c.n+j]; i != j && !math.IsInf(v, 1) && v > best {
				best = v
			}
		}
	}

	return best, nil
}
