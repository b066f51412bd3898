// Package matching provides partial injective matchings between the two
// vertex classes of a bipartite graph, and an augmenting-path matcher that
// computes a maximum-cardinality matching over them.
//
// Overview:
//
//   - Matching stores one Entry per destination id: unassigned (optionally
//     with a payload), or a positive source id. Injectivity — no two
//     destinations mapping to the same source — is an invariant. Set repairs
//     the optional inverse table and evicts conflicting prior assignments to
//     preserve it.
//   - Complete builds the inverse table from the forward table in one pass,
//     after which Inverse returns an aliasing view with the two directions
//     swapped; mutations through either handle stay mutually visible.
//   - TryAugment grows a matching by one pair rooted at a source using the
//     classic direct-then-reroute alternating-path search. The two-phase scan
//     order in ascending destination order is part of the contract: it
//     determines which maximum matching is found, not merely whether one
//     exists.
//   - MaximumMatching runs TryAugment from every source in ascending order,
//     reusing a single destination-color scratch buffer.
//
// A note on naming: this construction is often called a "maximal matching"
// in the sparse-systems literature. The augmenting-path process actually
// guarantees the strictly stronger property of maximum cardinality (subject
// to the filters), and this package preserves that guarantee.
//
// Complexity:
//
//   - One TryAugment search: O(V + E) worst case; recursion depth is bounded
//     by the destination count.
//   - MaximumMatching: O(V·(V + E)).
//
// Scratch buffers:
//
//   - The dcolor/scolor buffers passed to TryAugment are caller-owned and
//     reused across calls for amortized zero-allocation hot loops. They carry
//     no cross-call guarantee: reset them before starting an independent
//     search whose visitation set must not leak from a prior one.
//
// Example usage:
//
//	g, _ := bipartite.NewFromForward([][]int{{1}, {1, 2}}, 2)
//	m, err := matching.MaximumMatching(g)
//	if err != nil { ... }
//	fmt.Println(m.NMatched()) // 2
package matching
