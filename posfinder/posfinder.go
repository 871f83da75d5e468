// SPDX-License-Identifier: MIT
// Package posfinder implements the best-position search used by local
// search and annealing: for a given vertex, try every other spine slot and
// report the slot that minimizes total crossings, together with that total.
// The total is recomputed from scratch for each candidate slot.
package posfinder

import (
	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/mutate"
	"github.com/katalvlaran/bookembed/placer"
)

// Result reports the best slot found for a vertex and the crossing total the
// graph would have if the vertex were moved there and its incident edges
// re-greedied.
type Result struct {
	BestPos int
	BestCr  int
}

// FindBestPosition moves the vertex currently at position v to every other
// spine slot in turn, running GreedyAtVertex at each trial slot and
// recording the slot with the lowest resulting total crossing number; ties
// keep the earliest slot. The reported slot is never v itself, and it may
// be worse than v's current slot: callers compare BestCr with the current
// total before applying it. A graph with fewer than two vertices has no
// other slot, and v is then reported with the current total. g is left
// unchanged; the caller is responsible for applying the winning move via
// mutate.MoveVertex + placer.GreedyAtVertex if it wants to keep it.
//
// Each trial clones g, applies mutate.MoveVertex and the localized
// re-greedy, and then recomputes crossing.Total in full. The sweep keeps
// no running per-page counts between neighbouring slots, so it is not
// incremental: every slot pays for a clone, a move and a full crossing
// count.
func FindBestPosition(g *bookgraph.Graph, v int) Result {
	origPos := v
	n := g.N()
	snapshot := g.Clone()
	origCr := crossing.Total(g)

	best := Result{BestPos: origPos, BestCr: origCr}
	found := false

	for trial := 0; trial < n; trial++ {
		if trial == origPos {
			continue
		}
		work := snapshot.Clone()
		mutate.MoveVertex(work, origPos, trial)
		placer.GreedyAtVertex(work, trial)
		cr := crossing.Total(work)
		if !found || cr < best.BestCr {
			found = true
			best.BestCr = cr
			best.BestPos = trial
		}
	}

	g.LoadFrom(snapshot)
	return best
}
