package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/incidence"
)

func TestDense_PatternAndFill(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{1}, {1, 2}, {2}}, 2)
	require.NoError(t, err)

	m, err := incidence.Dense(g, 1)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	want := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
	})
	assert.True(t, mat.Equal(want, m))

	// One non-zero per edge.
	nnz := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				nnz++
			}
		}
	}
	assert.Equal(t, g.NEdges(), nnz)
}

func TestDense_CustomFill(t *testing.T) {
	g := bipartite.New(1, 1)
	_, err := g.AddEdge(1, 1)
	require.NoError(t, err)
	m, err := incidence.Dense(g, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, m.At(0, 0))
}

func TestDense_Errors(t *testing.T) {
	_, err := incidence.Dense(nil, 1)
	require.ErrorIs(t, err, incidence.ErrNilGraph)
	_, err = incidence.Dense(bipartite.New(0, 3), 1)
	require.ErrorIs(t, err, incidence.ErrEmptyGraph)
}

func TestTriplets_COOOrder(t *testing.T) {
	g, err := bipartite.NewFromForward([][]int{{2}, {1, 2}}, 2)
	require.NoError(t, err)

	rows, cols, err := incidence.Triplets(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, rows)
	assert.Equal(t, []int{1, 0, 1}, cols)
}

func TestTriplets_NilGraph(t *testing.T) {
	_, _, err := incidence.Triplets(nil)
	require.ErrorIs(t, err, incidence.ErrNilGraph)
}
