// Package bipart is an in-memory toolkit for analyzing sparse bipartite
// incidence structures — the variable/equation incidence graphs that arise in
// symbolic and sparse-system analysis.
//
// 🚀 What is bipart?
//
//	A small, deterministic library that brings together:
//		• bipartite/   — dual-adjacency bipartite graphs with lazy completion
//		                 and true aliasing inverse views
//		• matching/    — partial injective matchings and an augmenting-path
//		                 maximum-cardinality matcher
//		• dicmo/       — the matching-induced Directed Contracted
//		                 Matching-Oriented view (DiCMOBiGraph)
//		• condense/    — strongly-connected-component condensation views
//		                 (matched and induced variants)
//		• hypergraph/  — a thin hyperedge layer with union-find components
//		• incidence/   — gonum-backed incidence-matrix export
//		• display/     — read-only table rendering of graphs and matchings
//
// ✨ Why choose bipart?
//
//   - Deterministic – sorted adjacency, ascending scan orders, reproducible
//     matchings
//   - View-based – oriented, contracted and condensed graphs are computed on
//     demand over shared storage; nothing is copied
//   - Pure algorithms – single-threaded, synchronous, no hidden I/O
//
// The typical pipeline builds a bipartite.Graph, runs matching.MaximumMatching
// over it, wraps both in a dicmo.Graph, and condenses the result:
//
//	g := bipartite.NewFromForward([][]int{{1}, {1, 2}}, 2)
//	m, _ := matching.MaximumMatching(g)
//	d, _ := dicmo.New(g, m)
//
// Dive into each package's doc.go for full contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/bipart
package bipart
