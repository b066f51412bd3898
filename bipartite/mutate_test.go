package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bipart/bipartite"
)

// ------------------------------------------------------------------------
// 1. AddEdge / RemoveEdge
// ------------------------------------------------------------------------

func TestAddEdge_SortedInsertAndMirror(t *testing.T) {
	g := bipartite.New(2, 3)

	for _, e := range []bipartite.Edge{{Src: 1, Dst: 3}, {Src: 1, Dst: 1}, {Src: 2, Dst: 2}} {
		added, err := g.AddEdge(e.Src, e.Dst)
		require.NoError(t, err)
		require.True(t, added)
	}

	nbr, _ := g.Neighbors(1)
	assert.Equal(t, []int{1, 3}, nbr, "insertion keeps the list sorted")
	bwd, _ := g.BackNeighbors(2)
	assert.Equal(t, []int{2}, bwd, "mirrored into the backward table")
	assert.Equal(t, 3, g.NEdges())
}

func TestAddEdge_DuplicateIsNoop(t *testing.T) {
	g := bipartite.New(1, 1)
	added, err := g.AddEdge(1, 1)
	require.NoError(t, err)
	require.True(t, added)

	added, err = g.AddEdge(1, 1)
	require.NoError(t, err)
	assert.False(t, added, "already-present edge reports false")
	assert.Equal(t, 1, g.NEdges())
}

func TestAddEdge_RangeErrors(t *testing.T) {
	g := bipartite.New(1, 1)
	_, err := g.AddEdge(2, 1)
	require.ErrorIs(t, err, bipartite.ErrSrcRange)
	_, err = g.AddEdge(1, 0)
	require.ErrorIs(t, err, bipartite.ErrDstRange)
}

func TestRemoveEdge_RestoresPriorState(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1, 2}, {2}}, 2, bipartite.WithBackwardTable())
	require.NoError(t, err)
	before := g.EdgesBySrc()
	ne := g.NEdges()

	added, err := g.AddEdge(2, 1)
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, g.RemoveEdge(2, 1))

	assert.Equal(t, ne, g.NEdges())
	assert.Equal(t, before, g.EdgesBySrc())
	bwd, _ := g.BackNeighbors(1)
	assert.Equal(t, []int{1}, bwd)
}

func TestRemoveEdge_NotFound(t *testing.T) {
	g := bipartite.New(2, 2)
	err := g.RemoveEdge(1, 2)
	require.ErrorIs(t, err, bipartite.ErrEdgeNotFound)
}

// ------------------------------------------------------------------------
// 2. AddVertex
// ------------------------------------------------------------------------

func TestAddVertex_BothClasses(t *testing.T) {
	g := bipartite.New(1, 1)

	id, err := g.AddVertex(bipartite.VertexSrc)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, g.NSrcs())

	id, err = g.AddVertex(bipartite.VertexDst)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, g.NDsts())

	// The fresh vertices start with empty adjacency and accept edges.
	added, err := g.AddEdge(2, 2)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestAddVertex_BadKind(t *testing.T) {
	g := bipartite.New(1, 1)
	_, err := g.AddVertex(bipartite.VertexKind(7))
	require.ErrorIs(t, err, bipartite.ErrBadVertexKind)
}

func TestAddVertex_ThroughInverseView(t *testing.T) {
	g := bipartite.New(2, 1)
	inv, err := g.Inverse()
	require.NoError(t, err)

	// A source of the view is a destination of the original.
	id, err := inv.AddVertex(bipartite.VertexSrc)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, g.NDsts())
}

// ------------------------------------------------------------------------
// 3. SetNeighbors
// ------------------------------------------------------------------------

func TestSetNeighbors_DiffRepairsBackwardTable(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1, 2}, {2}}, 3, bipartite.WithBackwardTable())
	require.NoError(t, err)

	// Replace {1,2} by {2,3}: drops 1, keeps 2, adds 3.
	require.NoError(t, g.SetNeighbors(1, []int{3, 2}))

	nbr, _ := g.Neighbors(1)
	assert.Equal(t, []int{2, 3}, nbr)
	assert.Equal(t, 3, g.NEdges())

	b1, _ := g.BackNeighbors(1)
	assert.Empty(t, b1)
	b2, _ := g.BackNeighbors(2)
	assert.Equal(t, []int{1, 2}, b2)
	b3, _ := g.BackNeighbors(3)
	assert.Equal(t, []int{1}, b3)
}

func TestSetNeighbors_CountDelta(t *testing.T) {
	g := bipartite.New(1, 4)
	require.NoError(t, g.SetNeighbors(1, []int{1, 2, 3}))
	assert.Equal(t, 3, g.NEdges())
	require.NoError(t, g.SetNeighbors(1, []int{4}))
	assert.Equal(t, 1, g.NEdges())
	require.NoError(t, g.SetNeighbors(1, nil))
	assert.Equal(t, 0, g.NEdges())
}

func TestSetNeighbors_Validation(t *testing.T) {
	g := bipartite.New(1, 1)
	require.ErrorIs(t, g.SetNeighbors(2, nil), bipartite.ErrSrcRange)
	require.ErrorIs(t, g.SetNeighbors(1, []int{5}), bipartite.ErrDstRange)
}

// ------------------------------------------------------------------------
// 4. Vertex deletion
// ------------------------------------------------------------------------

func TestDeleteSrcs_ClearOnly(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1}, {1, 2}, {2}}, 2, bipartite.WithBackwardTable())
	require.NoError(t, err)

	require.NoError(t, g.DeleteSrcs([]int{2}, false))

	assert.Equal(t, 3, g.NSrcs(), "vertex kept, adjacency cleared")
	nbr, _ := g.Neighbors(2)
	assert.Empty(t, nbr)
	assert.Equal(t, 2, g.NEdges())
	b1, _ := g.BackNeighbors(1)
	assert.Equal(t, []int{1}, b1)
}

func TestDeleteSrcs_RemoveRenumbers(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1}, {2}, {1, 2}}, 2, bipartite.WithBackwardTable())
	require.NoError(t, err)

	require.NoError(t, g.DeleteSrcs([]int{2}, true))

	require.Equal(t, 2, g.NSrcs())
	// Old source 3 became source 2; backward references follow the renumbering.
	nbr, _ := g.Neighbors(2)
	assert.Equal(t, []int{1, 2}, nbr)
	b1, _ := g.BackNeighbors(1)
	assert.Equal(t, []int{1, 2}, b1)
	b2, _ := g.BackNeighbors(2)
	assert.Equal(t, []int{2}, b2)
	assert.Equal(t, 3, g.NEdges())
}

func TestDeleteDsts_RequiresCompletion(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1}}, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.DeleteDsts([]int{1}, false), bipartite.ErrIncomplete)
}

func TestDeleteDsts_RemoveRenumbers(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1, 3}, {2, 3}}, 3, bipartite.WithBackwardTable())
	require.NoError(t, err)

	require.NoError(t, g.DeleteDsts([]int{2}, true))

	require.Equal(t, 2, g.NDsts())
	// Old destination 3 became destination 2 in every forward list.
	n1, _ := g.Neighbors(1)
	assert.Equal(t, []int{1, 2}, n1)
	n2, _ := g.Neighbors(2)
	assert.Equal(t, []int{2}, n2)
	assert.Equal(t, 3, g.NEdges())
}

func TestDeleteSrcs_RangeError(t *testing.T) {
	g := bipartite.New(1, 1)
	require.ErrorIs(t, g.DeleteSrcs([]int{9}, true), bipartite.ErrSrcRange)
}

// ------------------------------------------------------------------------
// 5. Metadata lockstep
// ------------------------------------------------------------------------

func TestMetadata_LockstepWithEdges(t *testing.T) {
	g := bipartite.New(1, 3, bipartite.WithMetadata())

	_, err := g.AddEdge(1, 2, "b")
	require.NoError(t, err)
	_, err = g.AddEdge(1, 1, "a")
	require.NoError(t, err)

	// Insertion before an existing entry must shift metadata with it.
	m, err := g.EdgeMetadata(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", m)
	m, err = g.EdgeMetadata(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", m)

	require.NoError(t, g.RemoveEdge(1, 1))
	m, err = g.EdgeMetadata(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", m)
}

func TestMetadata_Errors(t *testing.T) {
	plain := bipartite.New(1, 1)
	_, err := plain.EdgeMetadata(1, 1)
	require.ErrorIs(t, err, bipartite.ErrNoMetadata)

	g := bipartite.New(1, 1, bipartite.WithMetadata())
	_, err = g.EdgeMetadata(1, 1)
	require.ErrorIs(t, err, bipartite.ErrEdgeNotFound)

	_, err = g.AddEdge(1, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeMetadata(1, 1, 42))
	m, err := g.EdgeMetadata(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, m)
}
