package matching

import "github.com/katalvlaran/bipart/bipartite"

// TryAugment attempts to grow m by one pair rooted at src, using the
// direct-then-reroute alternating-path search:
//
//  1. Mark src visited in scolor, when tracked.
//  2. Scan src's destinations in ascending order; the first one passing
//     dstFilter and unassigned is assigned to src directly.
//  3. Otherwise scan again; each destination passing dstFilter and not yet
//     colored in dcolor is colored, and the source currently occupying it is
//     recursively re-routed. On success the destination is reassigned to src.
//  4. Otherwise the search fails and the matching is left unchanged.
//
// The two-phase scan order is significant: it selects which maximum matching
// is found among possibly several, not merely whether one exists.
//
// dcolor (indexed by destination id, length ≥ NDsts) is required; scolor
// (indexed by source id) is optional. Both are caller-owned scratch, mutated
// even on failure, and must be reset by the caller before an independent
// search. Recursion depth is bounded by the destination count.
//
// Complexity: O(V + E) worst case per search.
func TryAugment(m *Matching, g *bipartite.Graph, src int, dstFilter func(int) bool, dcolor, scolor []bool) (bool, error) {
	if scolor != nil && src >= 1 && src <= len(scolor) {
		scolor[src-1] = true
	}
	nbrs, err := g.Neighbors(src)
	if err != nil {
		return false, err
	}

	// Phase 1: direct assignment to an unassigned destination.
	for _, d := range nbrs {
		if dstFilter != nil && !dstFilter(d) {
			continue
		}
		if !m.Get(d).Assigned() {
			if serr := m.Set(d, src); serr != nil {
				return false, serr
			}

			return true, nil
		}
	}

	// Phase 2: re-route the source occupying an uncolored destination.
	for _, d := range nbrs {
		if dstFilter != nil && !dstFilter(d) {
			continue
		}
		if dcolor[d-1] {
			continue
		}
		dcolor[d-1] = true
		occupant := m.Get(d)
		if !occupant.Assigned() {
			// Freed by an eviction inside a deeper call; take it directly.
			if serr := m.Set(d, src); serr != nil {
				return false, serr
			}

			return true, nil
		}
		ok, rerr := TryAugment(m, g, occupant.Src(), dstFilter, dcolor, scolor)
		if rerr != nil {
			return false, rerr
		}
		if ok {
			if serr := m.Set(d, src); serr != nil {
				return false, serr
			}

			return true, nil
		}
	}

	return false, nil
}

// MaximumMatching computes a maximum-cardinality matching of g, subject to
// the optional source and destination filters. Sources are tried in
// ascending id order; a single destination-color buffer is reset before each
// root, so a source remains unmatched only if no augmenting path exists at
// the moment it is tried.
//
// Despite the "maximal matching" name common in this domain, the result is
// maximum, not merely inclusion-maximal; see the package documentation.
//
// Complexity: O(V·(V + E)) time, O(V) extra space.
func MaximumMatching(g *bipartite.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := New(g.NDsts())
	dcolor := make([]bool, g.NDsts())
	for src := 1; src <= g.NSrcs(); src++ {
		if cfg.srcFilter != nil && !cfg.srcFilter(src) {
			continue
		}
		clear(dcolor)
		if _, err := TryAugment(m, g, src, cfg.dstFilter, dcolor, nil); err != nil {
			return nil, err
		}
	}

	return m, nil
}
