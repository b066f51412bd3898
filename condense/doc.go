// Package condense provides strongly-connected-component condensation views:
// quotient graphs formed by collapsing each component of a precomputed
// partition to one vertex. SCC computation itself is an external
// collaborator; this package consumes its output.
//
// Two variants share the partition machinery:
//
//   - Matched wraps a dicmo.Graph. The out-neighbors of component c follow
//     every member's out-neighbors in the underlying view, map each reached
//     vertex to its component, and drop references back to c itself.
//     This is an intentionally non-strict, non-deduplicated multigraph view:
//     multiplicity between two components reflects the count of underlying
//     crossing edges, and no canonical edge set is ever materialized.
//   - Induced wraps a completed bipartite.Graph directly and assumes the
//     components are supplied in topological order. Out-neighbors of c are
//     the 2-hop neighbor components with strictly greater index, in-neighbors
//     those with strictly smaller index. The topological-order invariant is
//     assumed, not verified; an out-of-order partition silently yields an
//     inconsistent graph.
//
// Both variants expose only the component count, a contiguous 1-based
// component range, and neighbor enumeration — no edge count, matching the
// non-strict design. Partitions are validated once at construction
// (every vertex covered exactly once) and frozen; the views are not designed
// for incremental update.
//
// Complexity: neighbor enumeration is O(Σ deg) over the component's members
// (O(Σ 2-hop deg) for Induced).
package condense
