package bipartite

import (
	"fmt"
	"slices"
)

// store is the shared backing state of a Graph and all of its inverse views.
//
// fadj is the forward table: fadj[s-1] lists the destinations of source s.
// badj is the backward table (nil until completed): badj[d-1] lists the
// sources of destination d. ndst is authoritative for the destination count
// even while badj is absent. meta, when attached, mirrors fadj element for
// element.
type store struct {
	fadj [][]int
	badj [][]int
	meta [][]any
	ndst int
	ne   int
}

// Graph is a handle over a shared bipartite store. The inverted flag selects
// which stored class plays the role of the view's source class, so an inverse
// view is a second handle on the same store rather than a copy.
type Graph struct {
	st       *store
	inverted bool
}

// New returns an empty graph with nsrcs sources and ndsts destinations.
// Both adjacency tables are materialized, so the graph is complete from the
// start. Negative counts are treated as zero.
//
// Complexity: O(nsrcs + ndsts) time and space.
func New(nsrcs, ndsts int, opts ...GraphOption) *Graph {
	nsrcs = max(nsrcs, 0)
	ndsts = max(ndsts, 0)
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	st := &store{
		fadj: make([][]int, nsrcs),
		badj: make([][]int, ndsts),
		ndst: ndsts,
	}
	if cfg.metadata {
		st.meta = make([][]any, nsrcs)
	}

	return &Graph{st: st}
}

// NewFromForward builds a graph from an explicit forward adjacency: fadj[i]
// lists the destinations of source i+1. Lists are copied and normalized
// (sorted, duplicates dropped); the backward table is absent unless
// WithBackwardTable is given. Returns ErrDstRange if any entry falls outside
// 1..ndsts.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func NewFromForward(fadj [][]int, ndsts int, opts ...GraphOption) (*Graph, error) {
	if ndsts < 0 {
		ndsts = 0
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	st := &store{
		fadj: make([][]int, len(fadj)),
		ndst: ndsts,
	}
	for i, row := range fadj {
		cp := slices.Clone(row)
		slices.Sort(cp)
		cp = slices.Compact(cp)
		for _, d := range cp {
			if d < 1 || d > ndsts {
				return nil, fmt.Errorf("%w: destination %d of source %d (have %d destinations)", ErrDstRange, d, i+1, ndsts)
			}
		}
		st.fadj[i] = cp
		st.ne += len(cp)
	}
	if cfg.metadata {
		st.meta = make([][]any, len(st.fadj))
		for i, row := range st.fadj {
			st.meta[i] = make([]any, len(row))
		}
	}
	g := &Graph{st: st}
	if cfg.backward {
		g.Complete()
	}

	return g, nil
}

// NSrcs returns the number of vertices in the view's source class.
func (g *Graph) NSrcs() int {
	if g.inverted {
		return g.st.ndst
	}

	return len(g.st.fadj)
}

// NDsts returns the number of vertices in the view's destination class.
func (g *Graph) NDsts() int {
	if g.inverted {
		return len(g.st.fadj)
	}

	return g.st.ndst
}

// NEdges returns the number of edges, maintained incrementally by every
// mutation. O(1).
func (g *Graph) NEdges() int { return g.st.ne }

// HasSrc reports whether v is a valid source id of this view.
func (g *Graph) HasSrc(v int) bool { return v >= 1 && v <= g.NSrcs() }

// HasDst reports whether v is a valid destination id of this view.
func (g *Graph) HasDst(v int) bool { return v >= 1 && v <= g.NDsts() }

// IsComplete reports whether the backward table is materialized. Inverse
// views always report true, since Inverse requires completion.
func (g *Graph) IsComplete() bool { return g.st.badj != nil }

// RequireComplete fails fast with ErrIncomplete when the backward table is
// absent.
func (g *Graph) RequireComplete() error {
	if !g.IsComplete() {
		return ErrIncomplete
	}

	return nil
}

// Complete materializes the backward table from the forward table in one
// O(E) pass. A second call is a no-op. Scanning sources in ascending order
// leaves every backward list sorted without further work.
func (g *Graph) Complete() {
	st := g.st
	if st.badj != nil {
		return
	}
	badj := make([][]int, st.ndst)
	for i, row := range st.fadj {
		for _, d := range row {
			badj[d-1] = append(badj[d-1], i+1)
		}
	}
	st.badj = badj
}

// Inverse returns an aliasing view with the source and destination classes
// swapped. The view shares backing storage with g: mutation through either
// handle is immediately visible through both. Requires completion.
//
// Inverse of an inverse behaves identically to the original graph.
func (g *Graph) Inverse() (*Graph, error) {
	if err := g.RequireComplete(); err != nil {
		return nil, err
	}

	return &Graph{st: g.st, inverted: !g.inverted}, nil
}

// Neighbors returns the sorted destination list of source src. The returned
// slice aliases backing storage and must not be modified by the caller.
// O(1) access.
func (g *Graph) Neighbors(src int) ([]int, error) {
	if !g.HasSrc(src) {
		return nil, fmt.Errorf("%w: %d (have %d sources)", ErrSrcRange, src, g.NSrcs())
	}
	if g.inverted {
		return g.st.badj[src-1], nil
	}

	return g.st.fadj[src-1], nil
}

// BackNeighbors returns the sorted source list of destination dst. Requires
// completion; the returned slice aliases backing storage. O(1) access after
// Complete.
func (g *Graph) BackNeighbors(dst int) ([]int, error) {
	if !g.HasDst(dst) {
		return nil, fmt.Errorf("%w: %d (have %d destinations)", ErrDstRange, dst, g.NDsts())
	}
	if g.inverted {
		return g.st.fadj[dst-1], nil
	}
	if err := g.RequireComplete(); err != nil {
		return nil, err
	}

	return g.st.badj[dst-1], nil
}

// Degree returns the forward degree of source src.
func (g *Graph) Degree(src int) (int, error) {
	row, err := g.Neighbors(src)
	if err != nil {
		return 0, err
	}

	return len(row), nil
}

// HasEdge reports whether the edge src→dst exists. O(log deg).
func (g *Graph) HasEdge(src, dst int) (bool, error) {
	row, err := g.Neighbors(src)
	if err != nil {
		return false, err
	}
	if !g.HasDst(dst) {
		return false, fmt.Errorf("%w: %d (have %d destinations)", ErrDstRange, dst, g.NDsts())
	}
	_, found := slices.BinarySearch(row, dst)

	return found, nil
}

// EdgeMetadata returns the metadata value stored alongside the edge src→dst.
// Requires WithMetadata at construction; ErrEdgeNotFound when the edge is
// absent.
func (g *Graph) EdgeMetadata(src, dst int) (any, error) {
	s, d, err := g.storeCoords(src, dst)
	if err != nil {
		return nil, err
	}
	if g.st.meta == nil {
		return nil, ErrNoMetadata
	}
	i, found := slices.BinarySearch(g.st.fadj[s-1], d)
	if !found {
		return nil, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, src, dst)
	}

	return g.st.meta[s-1][i], nil
}

// SetEdgeMetadata overwrites the metadata value of an existing edge.
func (g *Graph) SetEdgeMetadata(src, dst int, m any) error {
	s, d, err := g.storeCoords(src, dst)
	if err != nil {
		return err
	}
	if g.st.meta == nil {
		return ErrNoMetadata
	}
	i, found := slices.BinarySearch(g.st.fadj[s-1], d)
	if !found {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, src, dst)
	}
	g.st.meta[s-1][i] = m

	return nil
}

// storeCoords validates view-relative (src, dst) and maps them onto the
// store's canonical orientation.
func (g *Graph) storeCoords(src, dst int) (s, d int, err error) {
	if !g.HasSrc(src) {
		return 0, 0, fmt.Errorf("%w: %d (have %d sources)", ErrSrcRange, src, g.NSrcs())
	}
	if !g.HasDst(dst) {
		return 0, 0, fmt.Errorf("%w: %d (have %d destinations)", ErrDstRange, dst, g.NDsts())
	}
	if g.inverted {
		return dst, src, nil
	}

	return src, dst, nil
}

// insertSorted inserts v into a sorted duplicate-free list, returning the new
// list, the insertion index, and whether v was actually inserted.
func insertSorted(list []int, v int) ([]int, int, bool) {
	i, found := slices.BinarySearch(list, v)
	if found {
		return list, i, false
	}

	return slices.Insert(list, i, v), i, true
}

// removeSorted removes v from a sorted list, returning the new list, the
// index v occupied, and whether it was present.
func removeSorted(list []int, v int) ([]int, int, bool) {
	i, found := slices.BinarySearch(list, v)
	if !found {
		return list, i, false
	}

	return slices.Delete(list, i, i+1), i, true
}
