package dicmo

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/matching"
)

// Graph is a contracted oriented view over an aliased bipartite graph and
// matching, or a plain simple digraph when built by NewEmpty. No new
// adjacency storage is materialized for the view case; every neighbor query
// is computed from the underlying pair on demand.
type Graph struct {
	bg         *bipartite.Graph
	m          *matching.Matching
	transposed bool

	// plain holds the owned adjacency of a NewEmpty-built digraph; nil for
	// matching-backed views.
	plain [][]int

	// ne memoizes the edge count after the first NEdges call. Stale after
	// underlying mutation; documented caller responsibility.
	ne   int
	neOK bool
}

// New returns the view whose vertex set is the source class of bg.
func New(bg *bipartite.Graph, m *matching.Matching) (*Graph, error) {
	if bg == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	return &Graph{bg: bg, m: m}, nil
}

// NewTransposed returns the mirror view whose vertex set is the destination
// class of bg.
func NewTransposed(bg *bipartite.Graph, m *matching.Matching) (*Graph, error) {
	if bg == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	return &Graph{bg: bg, m: m, transposed: true}, nil
}

// NewEmpty returns a plain simple directed graph with n vertices and no
// edges. Unlike the view constructors it owns its adjacency and supports
// AddEdge; subgraph-extraction utilities use it to materialize a same-shaped
// empty graph.
func NewEmpty(n int) *Graph {
	return &Graph{plain: make([][]int, max(n, 0))}
}

// Transposed reports the orientation fixed at construction.
func (g *Graph) Transposed() bool { return g.transposed }

// NVertices returns the size of the derived vertex set.
func (g *Graph) NVertices() int {
	switch {
	case g.plain != nil:
		return len(g.plain)
	case g.transposed:
		return g.bg.NDsts()
	default:
		return g.bg.NSrcs()
	}
}

// checkVertex validates v against the derived vertex set.
func (g *Graph) checkVertex(v int) error {
	if v < 1 || v > g.NVertices() {
		return fmt.Errorf("%w: %d (have %d vertices)", ErrVertexRange, v, g.NVertices())
	}

	return nil
}

// AddEdge inserts a→b into a plain digraph, keeping the list sorted and
// duplicate-free. ErrNotPlain on matching-backed views.
func (g *Graph) AddEdge(a, b int) error {
	if g.plain == nil {
		return ErrNotPlain
	}
	if err := g.checkVertex(a); err != nil {
		return err
	}
	if err := g.checkVertex(b); err != nil {
		return err
	}
	row := g.plain[a-1]
	if i, found := slices.BinarySearch(row, b); !found {
		g.plain[a-1] = slices.Insert(row, i, b)
		g.neOK = false
	}

	return nil
}

// OutNeighbors returns the out-neighbor list of v. For matching-backed views
// the list is computed on demand; its order follows the underlying sorted
// destination (or source) list, and the returned slice is freshly allocated.
func (g *Graph) OutNeighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	if g.plain != nil {
		return g.plain[v-1], nil
	}
	if g.transposed {
		return g.contractedFellows(v)
	}

	return g.matchedOut(v)
}

// InNeighbors returns the in-neighbor list of v, obtained by running the
// out-neighbor derivation through the transposed direction. Matching-backed
// views require the bipartite graph and the matching to be completed.
func (g *Graph) InNeighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	if g.plain != nil {
		// Plain digraphs keep no reverse adjacency; scan all rows, O(V+E).
		var in []int
		for a, row := range g.plain {
			if _, found := slices.BinarySearch(row, v); found {
				in = append(in, a+1)
			}
		}

		return in, nil
	}
	if g.transposed {
		return g.matchedIn(v)
	}

	return g.contractedBack(v)
}

// matchedOut maps source v's destinations through the matching: every
// destination matched to a source other than v contributes its match.
func (g *Graph) matchedOut(v int) ([]int, error) {
	nbrs, err := g.bg.Neighbors(v)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, d := range nbrs {
		if e := g.m.Get(d); e.Assigned() && e.Src() != v {
			out = append(out, e.Src())
		}
	}

	return out, nil
}

// contractedBack follows source v's own matched destination backward: the
// back-neighbors of that destination, minus v itself.
func (g *Graph) contractedBack(v int) ([]int, error) {
	e, err := g.m.InverseOf(v)
	if err != nil {
		return nil, err
	}
	if !e.Assigned() {
		return nil, nil
	}
	back, err := g.bg.BackNeighbors(e.Src())
	if err != nil {
		return nil, err
	}
	var in []int
	for _, s := range back {
		if s != v {
			in = append(in, s)
		}
	}

	return in, nil
}

// contractedFellows contracts destination v with its matched source and
// returns that source's other destinations. Unmatched destinations have no
// meaningful neighbor set.
func (g *Graph) contractedFellows(v int) ([]int, error) {
	e := g.m.Get(v)
	if !e.Assigned() {
		return nil, nil
	}
	nbrs, err := g.bg.Neighbors(e.Src())
	if err != nil {
		return nil, err
	}
	var out []int
	for _, d := range nbrs {
		if d != v {
			out = append(out, d)
		}
	}

	return out, nil
}

// matchedIn maps destination v's back-neighbor sources through the inverse
// matching: every source matched to a destination other than v contributes
// its match.
func (g *Graph) matchedIn(v int) ([]int, error) {
	back, err := g.bg.BackNeighbors(v)
	if err != nil {
		return nil, err
	}
	var in []int
	for _, s := range back {
		e, ierr := g.m.InverseOf(s)
		if ierr != nil {
			return nil, ierr
		}
		if e.Assigned() && e.Src() != v {
			in = append(in, e.Src())
		}
	}

	return in, nil
}

// HasEdge reports whether the view contains the directed edge a→b, by
// membership in the out-neighbor enumeration. O(degree).
func (g *Graph) HasEdge(a, b int) (bool, error) {
	out, err := g.OutNeighbors(a)
	if err != nil {
		return false, err
	}
	if err := g.checkVertex(b); err != nil {
		return false, err
	}

	return slices.Contains(out, b), nil
}

// NEdges sums per-vertex out-degree on first request and memoizes the
// result. The cache is not invalidated by mutation of the underlying graph
// or matching; callers that mutate must re-derive the view.
func (g *Graph) NEdges() (int, error) {
	if g.neOK {
		return g.ne, nil
	}
	total := 0
	for v := 1; v <= g.NVertices(); v++ {
		out, err := g.OutNeighbors(v)
		if err != nil {
			return 0, err
		}
		total += len(out)
	}
	g.ne = total
	g.neOK = true

	return total, nil
}
