package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/matching"
)

// benchGraph builds a random bipartite graph with a deterministic seed.
func benchGraph(n int, p float64, seed int64) *bipartite.Graph {
	r := rand.New(rand.NewSource(seed))
	g := bipartite.New(n, n)
	for s := 1; s <= n; s++ {
		for d := 1; d <= n; d++ {
			if r.Float64() < p {
				_, _ = g.AddEdge(s, d)
			}
		}
	}

	return g
}

func BenchmarkMaximumMatching_Sparse(b *testing.B) {
	g := benchGraph(500, 0.01, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaximumMatching(g)
	}
}

func BenchmarkMaximumMatching_Dense(b *testing.B) {
	g := benchGraph(200, 0.2, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaximumMatching(g)
	}
}

func BenchmarkTryAugment_ReusedScratch(b *testing.B) {
	g := benchGraph(300, 0.05, 3)
	m := matching.New(g.NDsts())
	dcolor := make([]bool, g.NDsts())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(dcolor)
		_, _ = matching.TryAugment(m, g, i%g.NSrcs()+1, nil, dcolor, nil)
	}
}
