// SPDX-License-Identifier: MIT
// Package crossing implements the geometric crossing test and the
// incremental crossing-count primitives the rest of the engine is built on:
// per-edge, per-vertex, and total crossing counts, plus the signed delta of
// swapping two adjacent spine positions.
//
// Two edges on the same page cross iff their endpoint intervals on the
// spine properly interleave; edges on different pages, or sharing an
// endpoint, never cross. Every function here is read-only with respect to
// its Graph argument.
package crossing

import "github.com/katalvlaran/bookembed/bookgraph"

// Cross reports whether a and b cross: same page, and exactly one endpoint
// of b lies strictly inside the open interval spanned by a (equivalently,
// the reverse — the relation is symmetric).
func Cross(a, b bookgraph.Edge) bool {
	if a.Page != b.Page {
		return false
	}
	aLo, aHi := a.Lo(), a.Hi()
	bLo, bHi := b.Lo(), b.Hi()
	if aLo < bLo && aHi > bLo && aHi < bHi {
		return true
	}
	if aLo > bLo && aLo < bHi && aHi > bHi {
		return true
	}
	return false
}

// EdgeCrossings counts how many edges of g cross e. It scans only the
// positions strictly between e's endpoints, so it costs O(hi-lo * avg-deg)
// rather than O(m) whenever e is short. For each edge incident to such a
// position and sharing e's page, the edge crosses e iff its other endpoint
// lies outside [lo, hi].
func EdgeCrossings(g *bookgraph.Graph, e bookgraph.Edge) int {
	lo, hi := e.Lo(), e.Hi()
	result := 0
	for pos := lo + 1; pos < hi; pos++ {
		for _, idx := range g.Neighs[pos] {
			e2 := g.Edges[idx]
			if e.Page != e2.Page {
				continue
			}
			other := e2.OtherEnd(pos)
			if other < lo || other > hi {
				result++
			}
		}
	}
	return result
}

// VertexCrossings sums EdgeCrossings over every edge incident to the
// vertex currently at position v.
func VertexCrossings(g *bookgraph.Graph, v int) int {
	result := 0
	for _, idx := range g.Neighs[v] {
		result += EdgeCrossings(g, g.Edges[idx])
	}
	return result
}

// Total returns the crossing number of g: the sum of EdgeCrossings over
// every edge, halved (each crossing pair is counted from both sides).
func Total(g *bookgraph.Graph) int {
	result := 0
	for _, e := range g.Edges {
		result += EdgeCrossings(g, e)
	}
	return result >> 1
}

// AdjacentSwapDelta returns the signed change in the total crossing number
// that would result from swapping the vertices at positions i and i+1,
// without mutating g. Only pairs of edges where one is incident to
// position i and the other to i+1 can change crossing state across the
// swap; edges sharing an endpoint are skipped since they never cross.
//
// For such a pair, the crossing state before the swap is determined in
// closed form from the two other-endpoint positions (no scan needed): the
// pair contributes -1 to the delta if it was crossing before the swap
// (since the swap always uncrosses a crossing pair incident to i and i+1
// the same way it always crosses a non-crossing one), else +1.
func AdjacentSwapDelta(g *bookgraph.Graph, i int) int {
	delta := 0
	for _, idx1 := range g.Neighs[i] {
		e1 := g.Edges[idx1]
		other1 := e1.OtherEnd(i)
		for _, idx2 := range g.Neighs[i+1] {
			if idx1 == idx2 {
				continue
			}
			e2 := g.Edges[idx2]
			if e1.Page != e2.Page {
				continue
			}
			other2 := e2.OtherEnd(i + 1)
			if other1 == i+1 || other2 == i || other1 == other2 {
				// The two edges share an endpoint; they never cross.
				continue
			}
			probe1 := bookgraph.Edge{V1: i, V2: other1, Page: e1.Page}
			probe2 := bookgraph.Edge{V1: i + 1, V2: other2, Page: e2.Page}
			if Cross(probe1, probe2) {
				delta--
			} else {
				delta++
			}
		}
	}
	return delta
}
