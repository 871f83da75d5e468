package mutate_test

import (
	"testing"

	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/mutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOrder(g *bookgraph.Graph) []int {
	ids := make([]int, g.N())
	for i, v := range g.Vertices {
		ids[i] = v.ID
	}
	return ids
}

func TestMoveVertex_PreservesEndpointIdentity(t *testing.T) {
	ref := bookgraph.New(5, 1)
	ref.AddEdge(0, 2, 0)
	ref.AddEdge(1, 3, 0)
	ref.AddEdge(2, 4, 0)
	g := ref.Clone()

	mutate.MoveVertex(g, 1, 4)

	require.NoError(t, g.CheckPermutation())
	assert.NoError(t, g.CheckEndpointIdentity(ref))
	assert.Equal(t, []int{0, 2, 3, 4, 1}, idOrder(g))
}

func TestMoveVertex_NoOpWhenSamePosition(t *testing.T) {
	g := bookgraph.New(4, 1)
	g.AddEdge(0, 1, 0)
	before := idOrder(g)
	mutate.MoveVertex(g, 2, 2)
	assert.Equal(t, before, idOrder(g))
}

func TestMoveVertex_BackwardMove(t *testing.T) {
	ref := bookgraph.New(5, 1)
	ref.AddEdge(0, 4, 0)
	g := ref.Clone()

	mutate.MoveVertex(g, 4, 1)

	assert.Equal(t, []int{0, 4, 1, 2, 3}, idOrder(g))
	assert.NoError(t, g.CheckEndpointIdentity(ref))
}

func TestSwapVertices_AdjacentWithDirectEdge(t *testing.T) {
	ref := bookgraph.New(4, 1)
	ref.AddEdge(1, 2, 0)
	ref.AddEdge(0, 2, 0)
	g := ref.Clone()

	mutate.SwapVertices(g, 1, 2)

	assert.Equal(t, []int{0, 2, 1, 3}, idOrder(g))
	assert.NoError(t, g.CheckEndpointIdentity(ref))
	assert.NoError(t, g.CheckPermutation())
}

func TestSwapVertices_NonAdjacent(t *testing.T) {
	ref := bookgraph.New(5, 1)
	ref.AddEdge(0, 1, 0)
	ref.AddEdge(1, 4, 0)
	ref.AddEdge(2, 3, 0)
	g := ref.Clone()

	mutate.SwapVertices(g, 1, 4)

	assert.Equal(t, []int{0, 4, 2, 3, 1}, idOrder(g))
	assert.NoError(t, g.CheckEndpointIdentity(ref))
}

func TestSwapVertices_NoOpWhenEqual(t *testing.T) {
	g := bookgraph.New(3, 1)
	before := idOrder(g)
	mutate.SwapVertices(g, 1, 1)
	assert.Equal(t, before, idOrder(g))
}
