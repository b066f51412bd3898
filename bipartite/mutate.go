package bipartite

import (
	"fmt"
	"slices"
)

// fwdInsert inserts d into the forward row of source s, keeping the metadata
// row in lockstep. No-op when the edge already exists.
func (st *store) fwdInsert(s, d int, m any) bool {
	row, i, ok := insertSorted(st.fadj[s-1], d)
	if !ok {
		return false
	}
	st.fadj[s-1] = row
	if st.meta != nil {
		st.meta[s-1] = slices.Insert(st.meta[s-1], i, m)
	}

	return true
}

// fwdRemove removes d from the forward row of source s, dropping the metadata
// entry in lockstep.
func (st *store) fwdRemove(s, d int) bool {
	row, i, ok := removeSorted(st.fadj[s-1], d)
	if !ok {
		return false
	}
	st.fadj[s-1] = row
	if st.meta != nil {
		st.meta[s-1] = slices.Delete(st.meta[s-1], i, i+1)
	}

	return true
}

// bwdInsert mirrors an insertion into the backward table; no-op while the
// table is absent.
func (st *store) bwdInsert(d, s int) {
	if st.badj == nil {
		return
	}
	row, _, _ := insertSorted(st.badj[d-1], s)
	st.badj[d-1] = row
}

// bwdRemove mirrors a removal from the backward table; no-op while the table
// is absent.
func (st *store) bwdRemove(d, s int) {
	if st.badj == nil {
		return
	}
	row, _, _ := removeSorted(st.badj[d-1], s)
	st.badj[d-1] = row
}

// AddEdge inserts the edge src→dst, keeping both adjacency tables (and the
// metadata table, when attached) consistent. The optional metadata value is
// stored in lockstep with the forward entry. Reports false without error when
// the edge is already present.
//
// Complexity: O(log deg) search + O(deg) shift per affected list.
func (g *Graph) AddEdge(src, dst int, meta ...any) (bool, error) {
	s, d, err := g.storeCoords(src, dst)
	if err != nil {
		return false, err
	}
	var m any
	if len(meta) > 0 {
		m = meta[0]
	}
	if !g.st.fwdInsert(s, d, m) {
		return false, nil
	}
	g.st.bwdInsert(d, s)
	g.st.ne++

	return true, nil
}

// RemoveEdge deletes the edge src→dst, the exact inverse of AddEdge. Returns
// ErrEdgeNotFound when the edge is absent; range errors on bad endpoints.
func (g *Graph) RemoveEdge(src, dst int) error {
	s, d, err := g.storeCoords(src, dst)
	if err != nil {
		return err
	}
	if !g.st.fwdRemove(s, d) {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, src, dst)
	}
	g.st.bwdRemove(d, s)
	g.st.ne--

	return nil
}

// AddVertex appends an empty adjacency row to the given class of this view
// and returns the new vertex id. ErrBadVertexKind on an unrecognized tag.
func (g *Graph) AddVertex(kind VertexKind) (int, error) {
	if kind != VertexSrc && kind != VertexDst {
		return 0, fmt.Errorf("%w: %d", ErrBadVertexKind, int(kind))
	}
	st := g.st
	// The view's source class is the store's source class unless inverted.
	if (kind == VertexSrc) != g.inverted {
		st.fadj = append(st.fadj, nil)
		if st.meta != nil {
			st.meta = append(st.meta, nil)
		}

		return len(st.fadj), nil
	}
	st.ndst++
	if st.badj != nil {
		st.badj = append(st.badj, nil)
	}

	return st.ndst, nil
}

// SetNeighbors replaces the whole neighbor list of source src. The new list
// is copied and normalized, then diffed against the old one: stale backward
// references are removed, new ones inserted, and the edge count adjusted by
// the length delta. The metadata row, when attached, is reset to the new
// shape. Validation happens up front; past it the operation cannot fail.
//
// Complexity: O(len(old) + len(new)) diff plus backward-row edits.
func (g *Graph) SetNeighbors(src int, dsts []int) error {
	if !g.HasSrc(src) {
		return fmt.Errorf("%w: %d (have %d sources)", ErrSrcRange, src, g.NSrcs())
	}
	list := slices.Clone(dsts)
	slices.Sort(list)
	list = slices.Compact(list)
	for _, d := range list {
		if !g.HasDst(d) {
			return fmt.Errorf("%w: %d (have %d destinations)", ErrDstRange, d, g.NDsts())
		}
	}
	st := g.st
	if g.inverted {
		old := st.badj[src-1]
		diffSorted(old, list,
			func(s int) { st.fwdRemove(s, src) },
			func(s int) { st.fwdInsert(s, src, nil) })
		st.ne += len(list) - len(old)
		st.badj[src-1] = list

		return nil
	}
	old := st.fadj[src-1]
	diffSorted(old, list,
		func(d int) { st.bwdRemove(d, src) },
		func(d int) { st.bwdInsert(d, src) })
	st.ne += len(list) - len(old)
	st.fadj[src-1] = list
	if st.meta != nil {
		st.meta[src-1] = make([]any, len(list))
	}

	return nil
}

// diffSorted walks two sorted duplicate-free lists and reports elements
// present only in old (removed) and only in cur (added).
func diffSorted(old, cur []int, removed, added func(int)) {
	i, j := 0, 0
	for i < len(old) && j < len(cur) {
		switch {
		case old[i] == cur[j]:
			i++
			j++
		case old[i] < cur[j]:
			removed(old[i])
			i++
		default:
			added(cur[j])
			j++
		}
	}
	for ; i < len(old); i++ {
		removed(old[i])
	}
	for ; j < len(cur); j++ {
		added(cur[j])
	}
}

// DeleteSrcs clears the adjacency of the given sources and, when
// removeVertices is set, physically removes them, renumbering the remaining
// source ids and rewriting every backward reference. Renumbering is monotone,
// so backward lists stay sorted. O(V+E).
func (g *Graph) DeleteSrcs(ids []int, removeVertices bool) error {
	for _, v := range ids {
		if !g.HasSrc(v) {
			return fmt.Errorf("%w: %d (have %d sources)", ErrSrcRange, v, g.NSrcs())
		}
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if g.inverted {
		g.st.deleteDstRows(sorted, removeVertices)
	} else {
		g.st.deleteSrcRows(sorted, removeVertices)
	}

	return nil
}

// DeleteDsts is the destination-class mirror of DeleteSrcs, implemented
// through the inverse view; it therefore requires completion.
func (g *Graph) DeleteDsts(ids []int, removeVertices bool) error {
	for _, v := range ids {
		if !g.HasDst(v) {
			return fmt.Errorf("%w: %d (have %d destinations)", ErrDstRange, v, g.NDsts())
		}
	}
	inv, err := g.Inverse()
	if err != nil {
		return err
	}

	return inv.DeleteSrcs(ids, removeVertices)
}

// deleteSrcRows deletes rows on the store's source side. ids must be sorted,
// duplicate-free, and in range.
func (st *store) deleteSrcRows(ids []int, remove bool) {
	for _, s := range ids {
		row := st.fadj[s-1]
		for _, d := range row {
			st.bwdRemove(d, s)
		}
		st.ne -= len(row)
		st.fadj[s-1] = nil
		if st.meta != nil {
			st.meta[s-1] = nil
		}
	}
	if !remove {
		return
	}
	del := make([]bool, len(st.fadj))
	for _, s := range ids {
		del[s-1] = true
	}
	remap := make([]int, len(st.fadj))
	kept := make([][]int, 0, len(st.fadj)-len(ids))
	var keptMeta [][]any
	if st.meta != nil {
		keptMeta = make([][]any, 0, len(st.fadj)-len(ids))
	}
	for i := range st.fadj {
		if del[i] {
			continue
		}
		kept = append(kept, st.fadj[i])
		if st.meta != nil {
			keptMeta = append(keptMeta, st.meta[i])
		}
		remap[i] = len(kept)
	}
	st.fadj = kept
	if st.meta != nil {
		st.meta = keptMeta
	}
	for d := range st.badj {
		row := st.badj[d]
		for k, s := range row {
			row[k] = remap[s-1]
		}
	}
}

// deleteDstRows deletes rows on the store's destination side. Callers
// guarantee the backward table exists (inverse views only exist after
// completion).
func (st *store) deleteDstRows(ids []int, remove bool) {
	for _, d := range ids {
		row := st.badj[d-1]
		for _, s := range row {
			st.fwdRemove(s, d)
		}
		st.ne -= len(row)
		st.badj[d-1] = nil
	}
	if !remove {
		return
	}
	del := make([]bool, st.ndst)
	for _, d := range ids {
		del[d-1] = true
	}
	remap := make([]int, st.ndst)
	kept := make([][]int, 0, st.ndst-len(ids))
	for i := range st.badj {
		if del[i] {
			continue
		}
		kept = append(kept, st.badj[i])
		remap[i] = len(kept)
	}
	st.badj = kept
	st.ndst = len(kept)
	for s := range st.fadj {
		row := st.fadj[s]
		for k, d := range row {
			row[k] = remap[d-1]
		}
	}
}
