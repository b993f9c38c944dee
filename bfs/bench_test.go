package bfs_test

import (
	"testing"

	"github.com/katalvlaran/algokit/bfs"
)

// BenchmarkBFS_Chain measures BFS on a 10k-vertex path.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_HookOverhead measures the cost of a visit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	g := chain(10000)
	visits := 0
	hook := bfs.WithOnVisit(func(int, int) error { visits++; return nil })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, hook)
	}
}
