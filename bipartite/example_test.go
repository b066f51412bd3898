package bipartite_test

import (
	"fmt"

	"github.com/katalvlaran/bipart/bipartite"
)

// ExampleNewFromForward demonstrates building a graph from explicit forward
// adjacency, completing it, and querying both directions.
func ExampleNewFromForward() {
	// 1. Three sources over two destinations.
	g, err := bipartite.NewFromForward([][]int{{1}, {1, 2}, {2}}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Materialize the backward table; O(E), idempotent.
	g.Complete()

	// 3. Forward and backward queries agree on the transpose.
	fwd, _ := g.Neighbors(2)
	bwd, _ := g.BackNeighbors(1)
	fmt.Println("edges:", g.NEdges(), "fwd(2):", fwd, "bwd(1):", bwd)
	// Output: edges: 4 fwd(2): [1 2] bwd(1): [1 2]
}

// ExampleGraph_Inverse shows that the inverse is a view, not a copy: an edge
// added through it is visible through the original handle.
func ExampleGraph_Inverse() {
	g := bipartite.New(2, 2)
	inv, _ := g.Inverse()

	// Adding dst1→src2 through the view is the original edge 2→1.
	if _, err := inv.AddEdge(1, 2); err != nil {
		fmt.Println("error:", err)
		return
	}

	ok, _ := g.HasEdge(2, 1)
	fmt.Println("original sees it:", ok)
	// Output: original sees it: true
}
