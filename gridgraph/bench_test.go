package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/replan/gridgraph"
)

// BenchmarkGenerate measures obstacle placement on a 500×500 grid at 20% density.
// Complexity: O(R×C)
func BenchmarkGenerate(b *testing.B) {
	rnd := gridgraph.NewRand(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Generate(500, 500, 0.2, rnd)
	}
}

// BenchmarkRelocate measures two moves per call, the simulation default.
// Complexity: O(R×C) per call for the candidate snapshot.
func BenchmarkRelocate(b *testing.B) {
	rnd := gridgraph.NewRand(42)
	g, err := gridgraph.Generate(200, 200, 0.2, rnd)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Relocate(2, rnd)
	}
}

// BenchmarkFreeComponents labels free regions on a 1000×1000 grid.
// Complexity: O(R×C×4)
func BenchmarkFreeComponents(b *testing.B) {
	g, err := gridgraph.Generate(1000, 1000, 0.4, gridgraph.NewRand(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FreeComponents()
	}
}
