// Package hypergraph wraps the bipartite primitives into a labeled
// hypergraph with union-find connected components.
//
// Errors:
//
//	ErrVertexRange - a member vertex id outside 1..NVertices.
//	ErrEdgeRange   - a hyperedge id outside 1..NEdges.
package hypergraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bipart/bipartite"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrVertexRange indicates a vertex id outside 1..NVertices.
	ErrVertexRange = errors.New("hypergraph: vertex out of range")

	// ErrEdgeRange indicates a hyperedge id outside 1..NEdges.
	ErrEdgeRange = errors.New("hypergraph: hyperedge out of range")
)

// Graph is a labeled hypergraph over a complete bipartite incidence store:
// sources are hyperedges, destinations are vertices.
type Graph struct {
	bg     *bipartite.Graph
	labels []any
}

// New returns an empty hypergraph.
func New() *Graph {
	return &Graph{bg: bipartite.New(0, 0)}
}

// NVertices returns the vertex count.
func (h *Graph) NVertices() int { return h.bg.NDsts() }

// NEdges returns the hyperedge count.
func (h *Graph) NEdges() int { return h.bg.NSrcs() }

// NIncidences returns the total number of (edge, vertex) memberships.
func (h *Graph) NIncidences() int { return h.bg.NEdges() }

// AddVertex appends a vertex with an optional label and returns its id.
func (h *Graph) AddVertex(label ...any) int {
	id, _ := h.bg.AddVertex(bipartite.VertexDst)
	var l any
	if len(label) > 0 {
		l = label[0]
	}
	h.labels = append(h.labels, l)

	return id
}

// Label returns the label of vertex v, nil when none was given.
func (h *Graph) Label(v int) (any, error) {
	if v < 1 || v > h.NVertices() {
		return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexRange, v, h.NVertices())
	}

	return h.labels[v-1], nil
}

// AddEdge creates a hyperedge over the given member vertices and returns its
// id. Duplicates among vs collapse; an empty member set yields an empty
// hyperedge. Validation happens before the edge is created, so a range error
// leaves the graph unchanged.
func (h *Graph) AddEdge(vs ...int) (int, error) {
	for _, v := range vs {
		if v < 1 || v > h.NVertices() {
			return 0, fmt.Errorf("%w: member %d (have %d vertices)", ErrVertexRange, v, h.NVertices())
		}
	}
	e, _ := h.bg.AddVertex(bipartite.VertexSrc)
	for _, v := range vs {
		_, _ = h.bg.AddEdge(e, v)
	}

	return e, nil
}

// EdgeVertices returns the sorted member vertices of hyperedge e. The slice
// aliases backing storage and must not be modified.
func (h *Graph) EdgeVertices(e int) ([]int, error) {
	vs, err := h.bg.Neighbors(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %d (have %d hyperedges)", ErrEdgeRange, e, h.NEdges())
	}

	return vs, nil
}

// VertexEdges returns the sorted hyperedges incident to vertex v.
func (h *Graph) VertexEdges(v int) ([]int, error) {
	es, err := h.bg.BackNeighbors(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexRange, v, h.NVertices())
	}

	return es, nil
}

// ConnectedComponents groups vertices connected through shared hyperedges.
// Disjoint-set union-find with path compression and union by rank; isolated
// vertices form singleton components. Components are ordered by their
// smallest member, members ascending.
func (h *Graph) ConnectedComponents() [][]int {
	n := h.NVertices()
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// Every hyperedge welds its members onto the first one.
	for e := 1; e <= h.NEdges(); e++ {
		vs, _ := h.bg.Neighbors(e)
		for _, v := range vs[min(1, len(vs)):] {
			union(vs[0]-1, v-1)
		}
	}

	// Collect components in first-appearance order: ascending smallest member.
	index := make(map[int]int, n)
	var comps [][]int
	for v := 0; v < n; v++ {
		root := find(v)
		i, ok := index[root]
		if !ok {
			i = len(comps)
			index[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], v+1)
	}

	return comps
}
