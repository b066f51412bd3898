package condense_test

import (
	"fmt"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/condense"
	"github.com/katalvlaran/bipart/dicmo"
	"github.com/katalvlaran/bipart/matching"
)

// ExampleNewMatched condenses a contracted oriented view under a two-block
// partition supplied by an external SCC pass.
func ExampleNewMatched() {
	// 1. Chain: src1—d1, src2—{d1,d2}, src3—d2; matched and oriented the
	//    view has the edges 2→1 and 3→2.
	g, _ := bipartite.NewFromForward([][]int{{1}, {1, 2}, {2}}, 2, bipartite.WithBackwardTable())
	m, _ := matching.MaximumMatching(g)
	m.Complete()
	d, _ := dicmo.New(g, m)

	// 2. Collapse {1,2} into one component: the internal edge disappears,
	//    the crossing edge survives.
	c, _ := condense.NewMatched(d, [][]int{{1, 2}, {3}})
	in, _ := c.InNeighbors(1)
	fmt.Println("components:", c.NComponents(), "in(1):", in)
	// Output: components: 2 in(1): [2]
}
