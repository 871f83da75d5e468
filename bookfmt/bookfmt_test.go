package bookfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/bookembed/bookfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = `3
1
# a comment line
0
1
2
0 1 [0]
1 2 [0]
0 2 [0]
`

func TestRead_ParsesVertexOrderAndEdges(t *testing.T) {
	g, err := bookfmt.Read(strings.NewReader(triangle))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 1, g.Pages)
	require.Equal(t, 3, g.M())
	assert.NoError(t, g.CheckPermutation())
	assert.NoError(t, g.CheckPages())
}

func TestRead_PermutedVertexOrderTranslatesIDsToPositions(t *testing.T) {
	const input = `3
1
2
0
1
0 2 [0]
`
	g, err := bookfmt.Read(strings.NewReader(input))
	require.NoError(t, err)
	// id 0 is at position 1, id 2 is at position 0; the edge "0 2" binds ids,
	// so it must connect positions 1 and 0.
	e := g.Edges[0]
	lo, hi := e.Lo(), e.Hi()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1, hi)
}

func TestRead_RejectsDuplicateVertexID(t *testing.T) {
	const input = "2\n1\n0\n0\n"
	_, err := bookfmt.Read(strings.NewReader(input))
	assert.Error(t, err)
}

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	g, err := bookfmt.Read(strings.NewReader(triangle))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bookfmt.Write(&buf, g))

	g2, err := bookfmt.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.N(), g2.N())
	assert.Equal(t, g.M(), g2.M())
	assert.Equal(t, g.Pages, g2.Pages)
	for i := range g.Edges {
		a1, a2 := g.IDPair(i)
		b1, b2 := g2.IDPair(i)
		assert.Equal(t, [2]int{a1, a2}, [2]int{b1, b2})
	}
}
