package crossing_test

import (
	"testing"

	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/gengraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross_SameOrDifferentPage(t *testing.T) {
	a := bookgraph.Edge{V1: 0, V2: 2, Page: 0}
	b := bookgraph.Edge{V1: 1, V2: 3, Page: 0}
	assert.True(t, crossing.Cross(a, b), "interleaved intervals on the same page must cross")

	b.Page = 1
	assert.False(t, crossing.Cross(a, b), "different pages never cross")
}

func TestCross_NestedOrDisjointNeverCross(t *testing.T) {
	a := bookgraph.Edge{V1: 0, V2: 3, Page: 0}
	nested := bookgraph.Edge{V1: 1, V2: 2, Page: 0}
	disjoint := bookgraph.Edge{V1: 4, V2: 5, Page: 0}
	assert.False(t, crossing.Cross(a, nested))
	assert.False(t, crossing.Cross(a, disjoint))
}

// K4 drawn on a single page with the natural vertex order has exactly one
// crossing: the two diagonals of the 4-cycle.
func TestTotal_K4OnePage(t *testing.T) {
	g, err := gengraph.Complete(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, crossing.Total(g))
}

// K4 has a crossing-free embedding on two pages.
func TestTotal_K4TwoPages(t *testing.T) {
	g, err := gengraph.Complete(4, 2)
	require.NoError(t, err)
	// 0-1,0-2,0-3,1-2,2-3 on page 0 (outerplanar fan), 1-3 on page 1.
	for i := range g.Edges {
		g.Edges[i].Page = 0
	}
	for i, e := range g.Edges {
		if (e.V1 == 1 && e.V2 == 3) || (e.V1 == 3 && e.V2 == 1) {
			g.Edges[i].Page = 1
		}
	}
	assert.Equal(t, 0, crossing.Total(g))
}

// A 3-cycle has no crossings regardless of page count.
func TestTotal_TriangleIsCrossingFree(t *testing.T) {
	g := bookgraph.New(3, 1)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(0, 2, 0)
	assert.Equal(t, 0, crossing.Total(g))
}

// K_{3,3} on a single page, with its two parts placed one after the other
// on the spine, has a positive crossing count (9); sanity-check it is
// positive.
func TestTotal_K33OnePageIsPositive(t *testing.T) {
	g, err := gengraph.CompleteMultipartite(3, 2, 1)
	require.NoError(t, err)
	assert.Greater(t, crossing.Total(g), 0)
}

// The 4-dimensional hypercube is not planar (32 edges exceed the 2n-4 = 28
// bound for a bipartite planar graph on 16 vertices), so no 2-page drawing
// of it is crossing-free. This test only checks that the generator's 2-page
// instance, with every edge still on page 0, counts no more crossings than
// the all-on-one-page baseline.
func TestTotal_HypercubeQ4TwoPagesNotWorseThanOnePage(t *testing.T) {
	onePage, err := gengraph.Hypercube(4, 1)
	require.NoError(t, err)
	twoPages, err := gengraph.Hypercube(4, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, crossing.Total(twoPages), crossing.Total(onePage))
}

func TestEdgeCrossings_MatchesTotalDecomposition(t *testing.T) {
	g, err := gengraph.Complete(5, 1)
	require.NoError(t, err)
	sum := 0
	for _, e := range g.Edges {
		sum += crossing.EdgeCrossings(g, e)
	}
	assert.Equal(t, sum, 2*crossing.Total(g))
}

func TestAdjacentSwapDelta_MatchesBruteForceRecount(t *testing.T) {
	g, err := gengraph.Complete(6, 2)
	require.NoError(t, err)
	for i := range g.Edges {
		g.Edges[i].Page = bookgraph.PageAssignment(i % 2)
	}

	for i := 0; i < g.N()-1; i++ {
		before := crossing.Total(g)
		delta := crossing.AdjacentSwapDelta(g, i)

		g.Vertices[i], g.Vertices[i+1] = g.Vertices[i+1], g.Vertices[i]
		for j := range g.Edges {
			e := &g.Edges[j]
			switch {
			case e.V1 == i:
				e.V1 = i + 1
			case e.V1 == i+1:
				e.V1 = i
			}
			switch {
			case e.V2 == i:
				e.V2 = i + 1
			case e.V2 == i+1:
				e.V2 = i
			}
		}
		g.RestoreNeighs()
		after := crossing.Total(g)

		assert.Equal(t, after-before, delta, "position %d", i)

		// swap back for the next iteration's baseline
		g.Vertices[i], g.Vertices[i+1] = g.Vertices[i+1], g.Vertices[i]
		for j := range g.Edges {
			e := &g.Edges[j]
			switch {
			case e.V1 == i:
				e.V1 = i + 1
			case e.V1 == i+1:
				e.V1 = i
			}
			switch {
			case e.V2 == i:
				e.V2 = i + 1
			case e.V2 == i+1:
				e.V2 = i
			}
		}
		g.RestoreNeighs()
	}
}
