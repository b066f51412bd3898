package dicmo_test

import (
	"fmt"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/dicmo"
	"github.com/katalvlaran/bipart/matching"
)

// ExampleNew derives the contracted oriented view of a small chain and walks
// its matched-edge reversals.
func ExampleNew() {
	// 1. Three sources over two destinations: src2 bridges both.
	g, _ := bipartite.NewFromForward([][]int{{1}, {1, 2}, {2}}, 2, bipartite.WithBackwardTable())

	// 2. Match it and build the view over the source class.
	m, _ := matching.MaximumMatching(g)
	d, _ := dicmo.New(g, m)

	// 3. src2 reaches d1, whose match is src1: the edge points 2→1.
	out, _ := d.OutNeighbors(2)
	ne, _ := d.NEdges()
	fmt.Println("out(2):", out, "edges:", ne)
	// Output: out(2): [1] edges: 2
}
