// Package incidence adapts bipartite graphs to sparse-matrix consumers: it
// turns the neighbor enumeration into an incidence matrix with rows for
// sources, columns for destinations, and one caller-chosen fill value per
// edge.
//
// The adapter is a pure read-side consumer of the graph; it never mutates.
// Dense materializes a gonum mat.Dense; Triplets exports the coordinate
// (COO) form for consumers that assemble their own sparse storage.
//
// Errors:
//
//	ErrNilGraph   - nil graph passed to a builder.
//	ErrEmptyGraph - Dense on a graph with an empty vertex class (gonum
//	                rejects zero-sized dimensions).
package incidence

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bipart/bipartite"
)

// Sentinel errors for incidence builders.
var (
	// ErrNilGraph indicates a nil *bipartite.Graph.
	ErrNilGraph = errors.New("incidence: graph is nil")

	// ErrEmptyGraph indicates a vertex class of size zero, which cannot form
	// a matrix dimension.
	ErrEmptyGraph = errors.New("incidence: graph has an empty vertex class")
)

// Dense builds the NSrcs×NDsts incidence matrix: entry (s-1, d-1) holds fill
// for every edge s→d and zero elsewhere. Row and column order follow the
// deterministic EdgesBySrc enumeration.
//
// Complexity: O(V·D) allocation + O(E) fill.
func Dense(g *bipartite.Graph, fill float64) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NSrcs() == 0 || g.NDsts() == 0 {
		return nil, ErrEmptyGraph
	}
	m := mat.NewDense(g.NSrcs(), g.NDsts(), nil)
	for _, e := range g.EdgesBySrc() {
		m.Set(e.Src-1, e.Dst-1, fill)
	}

	return m, nil
}

// Triplets exports the coordinate form of the incidence pattern: parallel
// 0-based (row, column) index slices, one pair per edge, in EdgesBySrc
// order. O(E).
func Triplets(g *bipartite.Graph) (rows, cols []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	edges := g.EdgesBySrc()
	rows = make([]int, len(edges))
	cols = make([]int, len(edges))
	for i, e := range edges {
		rows[i] = e.Src - 1
		cols[i] = e.Dst - 1
	}

	return rows, cols, nil
}
