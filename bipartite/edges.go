package bipartite

// EdgesBySrc enumerates every edge in the first deterministic total order:
// ascending source id, then ascending destination id within each source's
// list. O(E) time and space.
func (g *Graph) EdgesBySrc() []Edge {
	out := make([]Edge, 0, g.st.ne)
	n := g.NSrcs()
	for v := 1; v <= n; v++ {
		row, _ := g.Neighbors(v)
		for _, d := range row {
			out = append(out, Edge{Src: v, Dst: d})
		}
	}

	return out
}

// EdgesByDst enumerates every edge in the transposed total order: ascending
// destination id, then ascending source id. Requires completion. O(E).
func (g *Graph) EdgesByDst() ([]Edge, error) {
	out := make([]Edge, 0, g.st.ne)
	n := g.NDsts()
	for v := 1; v <= n; v++ {
		row, err := g.BackNeighbors(v)
		if err != nil {
			return nil, err
		}
		for _, s := range row {
			out = append(out, Edge{Src: s, Dst: v})
		}
	}

	return out, nil
}
