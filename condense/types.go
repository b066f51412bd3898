// Package condense defines the shared partition machinery and sentinel
// errors of the condensation views.
//
// Errors:
//
//	ErrNilGraph       - nil underlying graph passed to a constructor.
//	ErrBadPartition   - the partition does not cover every vertex exactly once.
//	ErrComponentRange - component index outside 1..NComponents.
//	ErrVertexRange    - vertex id outside the partitioned vertex set.
package condense

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for condensation views.
var (
	// ErrNilGraph indicates a nil underlying graph passed to a constructor.
	ErrNilGraph = errors.New("condense: underlying graph is nil")

	// ErrBadPartition indicates a partition with an empty component, an
	// out-of-range member, a duplicate member, or an uncovered vertex.
	ErrBadPartition = errors.New("condense: partition must cover every vertex exactly once")

	// ErrComponentRange indicates a component index outside 1..NComponents.
	ErrComponentRange = errors.New("condense: component index out of range")

	// ErrVertexRange indicates a vertex id outside the partitioned set.
	ErrVertexRange = errors.New("condense: vertex out of range")
)

// partition is a frozen decomposition of vertices 1..n into components
// 1..len(comps), with a derived membership array. Built once at construction;
// not designed for incremental update.
type partition struct {
	comps  [][]int
	member []int
}

// newPartition validates and copies comps over the vertex set 1..n.
func newPartition(comps [][]int, n int) (partition, error) {
	p := partition{
		comps:  make([][]int, len(comps)),
		member: make([]int, n),
	}
	for i, c := range comps {
		if len(c) == 0 {
			return partition{}, fmt.Errorf("%w: component %d is empty", ErrBadPartition, i+1)
		}
		p.comps[i] = slices.Clone(c)
		for _, v := range c {
			if v < 1 || v > n {
				return partition{}, fmt.Errorf("%w: member %d of component %d outside 1..%d", ErrBadPartition, v, i+1, n)
			}
			if p.member[v-1] != 0 {
				return partition{}, fmt.Errorf("%w: vertex %d appears twice", ErrBadPartition, v)
			}
			p.member[v-1] = i + 1
		}
	}
	for v, c := range p.member {
		if c == 0 {
			return partition{}, fmt.Errorf("%w: vertex %d uncovered", ErrBadPartition, v+1)
		}
	}

	return p, nil
}

// nComponents returns the component count.
func (p partition) nComponents() int { return len(p.comps) }

// component returns the member list of component c (1-based).
func (p partition) component(c int) ([]int, error) {
	if c < 1 || c > len(p.comps) {
		return nil, fmt.Errorf("%w: %d (have %d components)", ErrComponentRange, c, len(p.comps))
	}

	return p.comps[c-1], nil
}

// componentOf maps a vertex to its component index.
func (p partition) componentOf(v int) (int, error) {
	if v < 1 || v > len(p.member) {
		return 0, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexRange, v, len(p.member))
	}

	return p.member[v-1], nil
}
