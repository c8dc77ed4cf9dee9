package bfs_test

import (
	"testing"

	"github.com/vertiq/vertiq/bfs"
	"github.com/vertiq/vertiq/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N edges.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New()
	prev := g.AddVertex()
	start := prev
	for i := 0; i < N; i++ {
		next := g.AddVertex()
		_, _ = g.AddEdge(prev, next)
		prev = next
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10
// (1023 vertices), once per edge-store strategy.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	stores := map[string]func() core.EdgeStore{
		"ordered": func() core.EdgeStore { return core.NewOrderedEdges() },
		"coo":     func() core.EdgeStore { return core.NewCOOEdges() },
		"csr":     func() core.EdgeStore { return core.NewCSREdges() },
	}
	for name, mk := range stores {
		b.Run(name, func(b *testing.B) {
			const depth = 10
			nodeCount := (1 << depth) - 1

			g := core.New(core.WithEdgeStore(mk()))
			verts := make([]core.VertexHandle, nodeCount+1) // 1-based
			for i := 1; i <= nodeCount; i++ {
				verts[i] = g.AddVertex()
			}
			for i := 1; 2*i+1 <= nodeCount; i++ {
				_, _ = g.AddEdge(verts[i], verts[2*i])
				_, _ = g.AddEdge(verts[i], verts[2*i+1])
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.BFS(g, verts[1])
			}
		})
	}
}
