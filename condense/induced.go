package condense

import "github.com/katalvlaran/bipart/bipartite"

// Induced is the condensation induced on the source class of a completed
// bipartite graph by a partition supplied in topological order. Two sources
// are adjacent when they share a destination; edge direction follows the
// component indices.
type Induced struct {
	bg *bipartite.Graph
	p  partition
}

// NewInduced builds the induced condensation of bg's source class under
// comps. Requires completion; the topological ordering of comps is assumed,
// not verified.
func NewInduced(bg *bipartite.Graph, comps [][]int) (*Induced, error) {
	if bg == nil {
		return nil, ErrNilGraph
	}
	if err := bg.RequireComplete(); err != nil {
		return nil, err
	}
	p, err := newPartition(comps, bg.NSrcs())
	if err != nil {
		return nil, err
	}

	return &Induced{bg: bg, p: p}, nil
}

// NComponents returns the number of condensed vertices.
func (c *Induced) NComponents() int { return c.p.nComponents() }

// Component returns the member vertices of component i. The returned slice
// aliases the frozen partition and must not be modified.
func (c *Induced) Component(i int) ([]int, error) { return c.p.component(i) }

// ComponentOf maps an underlying source vertex to its component index.
func (c *Induced) ComponentOf(v int) (int, error) { return c.p.componentOf(v) }

// OutNeighbors enumerates the 2-hop neighbor components of component i with
// strictly greater index, multiplicity preserved.
func (c *Induced) OutNeighbors(i int) ([]int, error) {
	return c.reach(i, func(other int) bool { return other > i })
}

// InNeighbors enumerates the 2-hop neighbor components with strictly smaller
// index.
func (c *Induced) InNeighbors(i int) ([]int, error) {
	return c.reach(i, func(other int) bool { return other < i })
}

// reach walks member → destination → sharing source and keeps the components
// accepted by keep.
func (c *Induced) reach(i int, keep func(int) bool) ([]int, error) {
	members, err := c.p.component(i)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, v := range members {
		dsts, nerr := c.bg.Neighbors(v)
		if nerr != nil {
			return nil, nerr
		}
		for _, d := range dsts {
			srcs, berr := c.bg.BackNeighbors(d)
			if berr != nil {
				return nil, berr
			}
			for _, s := range srcs {
				if cs := c.p.member[s-1]; keep(cs) {
					out = append(out, cs)
				}
			}
		}
	}

	return out, nil
}
