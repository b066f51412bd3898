// Package display renders read-only text views of bipartite graphs,
// matchings, and contracted oriented views as aligned tables. It consumes
// only the neighbor-enumeration and matching-query contracts and never
// mutates its inputs.
//
// Errors:
//
//	ErrNilInput - nil graph, matching, or view passed to a renderer.
package display

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/dicmo"
	"github.com/katalvlaran/bipart/matching"
)

// ErrNilInput indicates a nil value passed to a renderer.
var ErrNilInput = errors.New("display: nil input")

// Graph renders one row per source with its destination list; when the graph
// is complete, the transposed rows follow in a second section.
func Graph(g *bipartite.Graph) (string, error) {
	if g == nil {
		return "", ErrNilInput
	}
	w := table.NewWriter()
	w.AppendHeader(table.Row{"src", "destinations"})
	for s := 1; s <= g.NSrcs(); s++ {
		nbrs, err := g.Neighbors(s)
		if err != nil {
			return "", err
		}
		w.AppendRow(table.Row{s, fmt.Sprint(nbrs)})
	}
	if !g.IsComplete() {
		return w.Render(), nil
	}
	bw := table.NewWriter()
	bw.AppendHeader(table.Row{"dst", "sources"})
	for d := 1; d <= g.NDsts(); d++ {
		back, err := g.BackNeighbors(d)
		if err != nil {
			return "", err
		}
		bw.AppendRow(table.Row{d, fmt.Sprint(back)})
	}

	return w.Render() + "\n" + bw.Render(), nil
}

// Matching renders one row per destination entry: the matched source id, or
// the unassigned payload when one is recorded.
func Matching(m *matching.Matching) (string, error) {
	if m == nil {
		return "", ErrNilInput
	}
	w := table.NewWriter()
	w.AppendHeader(table.Row{"dst", "src"})
	for d := 1; d <= m.Len(); d++ {
		w.AppendRow(table.Row{d, entryCell(m.Get(d))})
	}

	return w.Render(), nil
}

// Oriented renders the out-neighbor list of every vertex of a contracted
// oriented view.
func Oriented(d *dicmo.Graph) (string, error) {
	if d == nil {
		return "", ErrNilInput
	}
	w := table.NewWriter()
	w.AppendHeader(table.Row{"vertex", "out"})
	for v := 1; v <= d.NVertices(); v++ {
		out, err := d.OutNeighbors(v)
		if err != nil {
			return "", err
		}
		w.AppendRow(table.Row{v, fmt.Sprint(out)})
	}

	return w.Render(), nil
}

// entryCell formats one matching entry for a table cell.
func entryCell(e matching.Entry) string {
	if e.Assigned() {
		return fmt.Sprint(e.Src())
	}
	if p := e.Payload(); p != nil {
		return fmt.Sprintf("unassigned (%v)", p)
	}

	return "unassigned"
}
