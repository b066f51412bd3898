// Package bipartite provides a mutable sparse bipartite graph with dual
// adjacency storage, lazy completion of the backward table, and true aliasing
// inverse views.
//
// Overview:
//
//   - Two disjoint, independently-numbered vertex classes: sources 1..NSrcs
//     and destinations 1..NDsts.
//   - The forward table (per-source sorted destination lists) is always
//     present; the backward table (per-destination sorted source lists) is
//     materialized on demand by Complete in O(E) and is thereafter kept in
//     exact transpose lockstep by every mutation.
//   - Inverse returns a view over the same backing storage with the two
//     classes swapped: mutations through either handle are visible through
//     both. Inverse(Inverse(g)) behaves identically to g.
//
// Key operations:
//
//   - New / NewFromForward: construct empty or from explicit adjacency.
//   - Complete / IsComplete / RequireComplete: backward-table lifecycle.
//   - AddEdge / RemoveEdge: binary-search sorted insertion and removal,
//     O(log deg + deg) per call, mirrored into the backward table when
//     present; AddEdge on an existing pair is a no-op reporting false.
//   - AddVertex: append an empty adjacency row to either class.
//   - SetNeighbors: wholesale replacement of one source's neighbor list,
//     diffed against the old list to repair the backward table.
//   - DeleteSrcs / DeleteDsts: clear rows and optionally remove the vertices,
//     renumbering the remaining ids and rewriting all cross-references in
//     O(V+E). DeleteDsts requires completion.
//   - EdgesBySrc / EdgesByDst: the two deterministic total edge orders, O(E).
//
// Invariants:
//
//   - Every adjacency list is sorted and duplicate-free.
//   - NEdges equals the sum of forward list lengths.
//   - When present, the backward table is the exact transpose of the forward
//     table.
//
// Errors (sentinel):
//
//   - ErrIncomplete for backward-dependent operations before Complete.
//   - ErrSrcRange / ErrDstRange for out-of-range vertex ids.
//   - ErrEdgeNotFound for removing an absent edge.
//   - ErrBadVertexKind for an unrecognized vertex class tag.
//
// Concurrency: none. The graph is a plain mutable aggregate for
// single-threaded algorithmic use; aliasing views are the synchronization
// mechanism between the forward and backward representations.
//
// Example usage:
//
//	g, err := bipartite.NewFromForward([][]int{{1}, {1, 2}}, 2)
//	if err != nil { ... }
//	g.Complete()
//	back, _ := g.BackNeighbors(1) // [1 2]
package bipartite
