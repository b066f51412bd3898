// Package dicmo provides the Directed Contracted Matching-Oriented view of a
// bipartite graph — DiCMOBiGraph for short: a directed graph derived from a
// bipartite graph plus a matching by orienting every edge and contracting
// each matched pair into one vertex, without materializing any new storage.
//
// Overview:
//
//   - The orientation flag, fixed at construction, selects which vertex class
//     becomes the derived vertex set: New picks the sources, NewTransposed
//     the destinations.
//   - Non-transposed, the out-neighbors of source v are found by scanning
//     v's bipartite destinations: each destination matched to a source s ≠ v
//     contributes s (the matched edge is treated as reversed, pointing from
//     the destination back to its match); unmatched destinations and v's own
//     match are skipped. In-neighbors follow v's own matched destination
//     backward, which requires both the graph and the matching completed.
//   - Transposed is the mirror image: an unmatched destination has no
//     neighbors; otherwise v is contracted with its matched source s and
//     inherits all of s's other incident destinations.
//   - The acyclicity of this view is equivalent to the acyclicity of the
//     orientation the matching induces on the bipartite structure — the basis
//     for block-triangular decomposition of sparse systems.
//
// Edge count is computed by summing out-degrees on first request and
// memoized. The cache goes stale if the underlying graph or matching mutate
// afterwards; keeping it fresh is the caller's responsibility, not enforced.
//
// NewEmpty builds a plain, simple directed graph from just a vertex count,
// for generic subgraph-extraction utilities that need a same-shaped empty
// graph; it owns its adjacency and supports AddEdge.
//
// Complexity: OutNeighbors O(deg); HasEdge O(deg); NEdges O(V+E) once, then
// O(1).
package dicmo
