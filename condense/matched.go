package condense

import "github.com/katalvlaran/bipart/dicmo"

// Matched is the condensation of a contracted oriented view under a frozen
// SCC partition. It aliases the underlying view; nothing is materialized.
type Matched struct {
	dg *dicmo.Graph
	p  partition
}

// NewMatched builds the condensation of dg under comps. The partition must
// cover every vertex of dg exactly once.
func NewMatched(dg *dicmo.Graph, comps [][]int) (*Matched, error) {
	if dg == nil {
		return nil, ErrNilGraph
	}
	p, err := newPartition(comps, dg.NVertices())
	if err != nil {
		return nil, err
	}

	return &Matched{dg: dg, p: p}, nil
}

// NComponents returns the number of condensed vertices.
func (c *Matched) NComponents() int { return c.p.nComponents() }

// Component returns the member vertices of component i. The returned slice
// aliases the frozen partition and must not be modified.
func (c *Matched) Component(i int) ([]int, error) { return c.p.component(i) }

// ComponentOf maps an underlying vertex to its component index.
func (c *Matched) ComponentOf(v int) (int, error) { return c.p.componentOf(v) }

// OutNeighbors enumerates the components reached from component i, one entry
// per underlying crossing edge (multiplicity preserved, self-references
// dropped).
func (c *Matched) OutNeighbors(i int) ([]int, error) {
	return c.crossings(i, c.dg.OutNeighbors)
}

// InNeighbors mirrors OutNeighbors over the underlying in-neighbor relation.
func (c *Matched) InNeighbors(i int) ([]int, error) {
	return c.crossings(i, c.dg.InNeighbors)
}

// crossings maps every member's underlying neighbors to components,
// excluding i itself.
func (c *Matched) crossings(i int, neighbors func(int) ([]int, error)) ([]int, error) {
	members, err := c.p.component(i)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, v := range members {
		reached, nerr := neighbors(v)
		if nerr != nil {
			return nil, nerr
		}
		for _, w := range reached {
			if cw := c.p.member[w-1]; cw != i {
				out = append(out, cw)
			}
		}
	}

	return out, nil
}
