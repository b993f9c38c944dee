// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"math"
)

// closure runs the Floyd–Warshall triple loop with a custom path extension
// and comparison. skip(x) marks entries that cannot extend a path.
func closure(ctx context.Context, m *Dense, skip func(float64) bool, extend func(a, b float64) float64, better func(cand, cur float64) bool) error {
	n := m.n
	data := m.data
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if skip(ik) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := data[k*n+j]
				if skip(kj) {
					continue
				}
				if cand := extend(ik, kj); better(cand, data[i*n+j]) {
					data[i*n+j] = cand
				}
			}
		}
	}

	return nil
}

// Minimax rewrites m so that m(i,j) is the smallest possible value of the
// largest edge on any i→j path. Use a distance-matrix layout (+Inf = no edge).
// This answers "what is the loudest street you must cross" style queries.
func Minimax(m *Dense, opts ...Option) error {
	if m == nil {
		return matrixErrorf("Minimax", ErrNilMatrix)
	}
	err := closure(buildOptions(opts).Ctx, m,
		func(x float64) bool { return math.IsInf(x, 1) },
		math.Max,
		func(cand, cur float64) bool { return cand < cur },
	)
	if err != nil {
		return matrixErrorf("Minimax", err)
	}

	return nil
}

// Maximin rewrites m so that m(i,j) is the largest possible value of the
// smallest edge on any i→j path (widest path). Use NewWidthMatrix layout
// (-Inf = no edge, +Inf diagonal).
func Maximin(m *Dense, opts ...Option) error {
	if m == nil {
		return matrixErrorf("Maximin", ErrNilMatrix)
	}
	err := closure(buildOptions(opts).Ctx, m,
		func(x float64) bool { return math.IsInf(x, -1) },
		math.Min,
		func(cand, cur float64) bool { return cand > cur },
	)
	if err != nil {
		return matrixErrorf("Maximin", err)
	}

	return nil
}

// MaxProduct rewrites m so that m(i,j) is the best product of rates along an
// i→j path. Use NewRateMatrix layout (0 = no exchange, 1 diagonal). When a
// cycle multiplies to more than 1 the values only grow, so the result then
// reflects a bounded number of trips around it.
func MaxProduct(m *Dense, opts ...Option) error {
	if m == nil {
		return matrixErrorf("MaxProduct", ErrNilMatrix)
	}
	err := closure(buildOptions(opts).Ctx, m,
		func(x float64) bool { return x <= 0 },
		func(a, b float64) float64 { return a * b },
		func(cand, cur float64) bool { return cand > cur },
	)
	if err != nil {
		return matrixErrorf("MaxProduct", err)
	}

	return nil
}

// arbitrageEps absorbs float rounding in rate products.
const arbitrageEps = 1e-9

// HasArbitrage reports whether some currency can be exchanged around a cycle
// for more than it started with. rates is not modified.
func HasArbitrage(rates *Dense) (bool, error) {
	if rates == nil {
		return false, matrixErrorf("HasArbitrage", ErrNilMatrix)
	}
	c := rates.Clone()
	if err := MaxProduct(c); err != nil {
		return false, err
	}
	for i := 0; i < c.n; i++ {
		if c.data[i*c.n+i] > 1+arbitrageEps {
			return true, nil
		}
	}

	return false, nil
}

// TransitiveClosure returns reach[i][j] = true when j is reachable from i in
// the distance matrix m (finite entries are edges; every vertex reaches
// itself).
func TransitiveClosure(m *Dense) ([][]bool, error) {
	if m == nil {
		return nil, matrixErrorf("TransitiveClosure", ErrNilMatrix)
	}
	n := m.n
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			reach[i][j] = i == j || !math.IsInf(m.data[i*n+j], 1)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	return reach, nil
}
