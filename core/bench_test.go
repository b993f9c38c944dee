package core_test

import (
	"testing"

	"github.com/katalvlaran/algokit/core"
)

// BenchmarkAddEdge measures inserting a path over b.N+1 vertices.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(b.N+1, core.WithWeighted())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(i, i+1, int64(i))
	}
}

// BenchmarkNeighbors measures adjacency reads on a star graph.
func BenchmarkNeighbors(b *testing.B) {
	const n = 1024
	g := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_, _ = g.AddEdge(0, v, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(i % n)
	}
}
