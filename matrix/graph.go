// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/algokit/core"
)

// FromGraph builds the distance matrix of g: 0 on the diagonal, the lightest
// arc weight for each ordered pair and +Inf where no arc exists. Undirected
// edges fill both (u,v) and (v,u). A negative self-loop lowers the diagonal
// below 0, which FloydWarshall then reports as a negative cycle.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := NewDistanceMatrix(g.Order())
	if err != nil {
		return nil, err
	}
	n := m.n
	for _, e := range g.Arcs() {
		idx := e.From*n + e.To
		m.data[idx] = math.Min(m.data[idx], float64(e.Weight))
	}

	return m, nil
}
