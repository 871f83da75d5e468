// SPDX-License-Identifier: MIT
// Package mutate implements the two spine-ordering primitives every local
// search operator is built from: moving a single vertex to a new position,
// and swapping two vertices (adjacent or not). Both preserve invariants
// I1-I3 of bookgraph.Graph: edge endpoint identity, the vertex permutation,
// and per-vertex adjacency.
package mutate

import "github.com/katalvlaran/bookembed/bookgraph"

// MoveVertex removes the vertex at oldPos and reinserts it at newPos; every
// other vertex shifts by one position toward the freed slot. Every edge's
// V1/V2 fields are remapped through the resulting permutation; Neighs
// itself does not need rebuilding since edge objects are not relocated,
// only their positional fields change.
func MoveVertex(g *bookgraph.Graph, oldPos, newPos int) {
	if oldPos == newPos {
		return
	}
	n := g.N()
	newPosOf := make([]int, n)
	for i := 0; i < n; i++ {
		p := i
		if i > oldPos {
			p-- // vertices after the old slot shift back to fill it
		}
		if p >= newPos {
			p++ // vertices at or after the new slot shift forward
		}
		if i == oldPos {
			p = newPos // the moved vertex lands exactly at newPos
		}
		newPosOf[i] = p
	}

	moved := make([]bookgraph.Vertex, n)
	movedNeighs := make([][]int, n)
	for i := 0; i < n; i++ {
		moved[newPosOf[i]] = g.Vertices[i]
		movedNeighs[newPosOf[i]] = g.Neighs[i]
	}
	g.Vertices = moved
	g.Neighs = movedNeighs

	for i := range g.Edges {
		g.Edges[i].V1 = newPosOf[g.Edges[i].V1]
		g.Edges[i].V2 = newPosOf[g.Edges[i].V2]
	}
}

// SwapVertices exchanges the vertices currently at positions a and b (not
// necessarily adjacent). Each edge incident to a has its a-side endpoint
// rewritten to b, and symmetrically for b, with the edge connecting a and b
// itself (if any) rewritten exactly once to avoid swapping it back to its
// original form. Cost is O(deg(a)+deg(b)).
func SwapVertices(g *bookgraph.Graph, a, b int) {
	if a == b {
		return
	}
	for _, idx := range g.Neighs[a] {
		e := &g.Edges[idx]
		switch {
		case e.V1 == a && e.V2 == b, e.V1 == b && e.V2 == a:
			e.V1, e.V2 = e.V2, e.V1
		case e.V1 == a:
			e.V1 = b
		case e.V2 == a:
			e.V2 = b
		}
	}
	for _, idx := range g.Neighs[b] {
		e := &g.Edges[idx]
		// The a-b edge was already rewritten above; skip it here.
		if e.V1 == b && e.V2 != a {
			e.V1 = a
		} else if e.V2 == b && e.V1 != a {
			e.V2 = a
		}
	}
	g.Vertices[a], g.Vertices[b] = g.Vertices[b], g.Vertices[a]
	g.Neighs[a], g.Neighs[b] = g.Neighs[b], g.Neighs[a]
}
