// SPDX-License-Identifier: MIT
// Package placer assigns pages to edges for a fixed spine ordering: greedy
// per-edge assignment, a length-ordered variant, and a restart wrapper that
// reseeds all page assignments and keeps the result only if it strictly
// improves on the prior crossing number.
package placer

import (
	"sort"

	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
)

// GreedyEdgePage assigns e the page with the fewest crossings, among all
// P pages, preferring any page other than e's current one on ties
// ("anti-sticky": a documented behavior decision carried over from the
// original engine, not a bug — it trades a little assignment churn for
// more exploration of the page space during restarts). If e starts
// Unassigned, the first candidate page is taken unconditionally regardless
// of how its crossing count compares to origCr, since an Unassigned edge
// is not a legal page to end on; this mirrors the original engine's
// "curCr <= bestCr || best < 0" fallback. It reports whether the chosen
// page strictly reduces the crossing count versus the original.
func GreedyEdgePage(g *bookgraph.Graph, e *bookgraph.Edge) bool {
	origPage := e.Page
	origCr := crossing.EdgeCrossings(g, *e)
	bestCr := origCr
	best := origPage
	improved := false
	for p := 0; p < g.Pages; p++ {
		pa := bookgraph.PageAssignment(p)
		if pa == origPage {
			continue
		}
		e.Page = pa
		cr := crossing.EdgeCrossings(g, *e)
		if cr <= bestCr || !best.IsAssigned() {
			if cr < bestCr || !best.IsAssigned() {
				improved = true
			}
			bestCr = cr
			best = pa
		}
	}
	e.Page = best
	return improved
}

// GreedyAtVertex runs GreedyEdgePage on every edge incident to the vertex
// currently at position v.
func GreedyAtVertex(g *bookgraph.Graph, v int) {
	for _, idx := range g.Neighs[v] {
		GreedyEdgePage(g, &g.Edges[idx])
	}
}

// GreedyPages repeats GreedyEdgePage over every edge, in edge-index order,
// until a full pass makes no improvement.
func GreedyPages(g *bookgraph.Graph) {
	improved := true
	for improved {
		improved = false
		for i := range g.Edges {
			if GreedyEdgePage(g, &g.Edges[i]) {
				improved = true
			}
		}
	}
}

// LenPages is GreedyPages with edges visited in order of decreasing span
// |pos(v1)-pos(v2)|: placing long edges first tends to leave the page
// space less fragmented for the short edges that follow.
func LenPages(g *bookgraph.Graph) {
	order := make([]int, len(g.Edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := g.Edges[order[a]], g.Edges[order[b]]
		return (ea.Hi() - ea.Lo()) > (eb.Hi() - eb.Lo())
	})
	improved := true
	for improved {
		improved = false
		for _, idx := range order {
			if GreedyEdgePage(g, &g.Edges[idx]) {
				improved = true
			}
		}
	}
}

// Restart clears every edge's page on a working copy of g, runs placer on
// that copy, and — only if the result is strictly better than prevCr —
// commits the copy back into g. It returns the crossing number that should
// be treated as current (either the improved value, or prevCr unchanged).
func Restart(g *bookgraph.Graph, prevCr int, place func(*bookgraph.Graph)) int {
	backup := g.Clone()
	g.ClearPages()
	place(g)
	newCr := crossing.Total(g)
	if newCr >= prevCr {
		g.LoadFrom(backup)
		return prevCr
	}
	return newCr
}
