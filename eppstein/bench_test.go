package eppstein_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kpaths/eppstein"
	"github.com/katalvlaran/kpaths/graph"
)

// buildDenseGraph creates a connected, weighted graph with n vertices and
// edgesCount extra random edges, using a fixed seed so benchmark runs are
// repeatable.
func buildDenseGraph(n, edgesCount int) *graph.Graph[string] {
	g := graph.New[string]()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 1; i < n; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i), 1+r.Float64()*10)
	}
	for i := 0; i < edgesCount; i++ {
		from := r.Intn(n)
		to := r.Intn(n)
		g.AddEdge(fmt.Sprintf("v%d", from), fmt.Sprintf("v%d", to), 1+r.Float64()*10)
	}
	return g
}

// BenchmarkNew measures H_T construction cost over a dense graph with 500
// vertices and 2000 extra edges.
func BenchmarkNew(b *testing.B) {
	g := buildDenseGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eppstein.New[string](g, "v0", "v499")
	}
}

// BenchmarkPaths measures enumeration cost for the 100 shortest walks once
// H_T is already built.
func BenchmarkPaths(b *testing.B) {
	g := buildDenseGraph(500, 2000)
	eng, err := eppstein.New[string](g, "v0", "v499")
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.Paths(100)
	}
}
