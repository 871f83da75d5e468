// SPDX-License-Identifier: MIT
// Package localsearch implements the two outer local-search loops the
// engine runs before (and between) simulated annealing passes: BaurBrandes
// repositions every vertex to its locally best spine slot until a full
// pass makes no improvement; BBGreedy and GreedyBB interleave BaurBrandes
// with the placer's greedy and length-ordered page assignment, each
// running until neither stage can improve the crossing number further.
package localsearch

import (
	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/mutate"
	"github.com/katalvlaran/bookembed/placer"
	"github.com/katalvlaran/bookembed/posfinder"
)

// Tracker receives every candidate embedding local search produces, so the
// caller can record the best one seen regardless of whether it ends up in
// the final returned graph. claimedCr of -1 means "recompute the crossing
// number yourself" (used after a pass where the tracker doesn't have it on
// hand already).
type Tracker interface {
	Offer(g *bookgraph.Graph, claimedCr int)
}

// BaurBrandes repeatedly sweeps every spine position, moving the vertex
// there to whichever slot posfinder reports as strictly improving, until a
// full sweep makes no move. Every full sweep that made at least one move is
// offered to best.
func BaurBrandes(g *bookgraph.Graph, best Tracker) {
	n := g.N()
	improved := true
	for improved {
		improved = false
		for i := 0; i < n; i++ {
			res := posfinder.FindBestPosition(g, i)
			if res.BestCr < crossing.Total(g) {
				mutate.MoveVertex(g, i, res.BestPos)
				placer.GreedyAtVertex(g, res.BestPos)
				improved = true
			}
		}
		if improved {
			best.Offer(g, -1)
		}
	}
}

// BBGreedy alternates BaurBrandes with the placer's greedy and
// length-ordered restarts, continuing until one full cycle leaves the
// crossing number unchanged. It returns the final crossing number.
func BBGreedy(g *bookgraph.Graph, best Tracker) int {
	for {
		oldCr := crossing.Total(g)
		BaurBrandes(g, best)
		newCr := crossing.Total(g)
		best.Offer(g, newCr)

		placer.GreedyPages(g)
		newCr = crossing.Total(g)
		best.Offer(g, newCr)
		newCr = placer.Restart(g, newCr, placer.LenPages)
		newCr = placer.Restart(g, newCr, placer.GreedyPages)

		if newCr == oldCr {
			return newCr
		}
		best.Offer(g, newCr)
	}
}

// GreedyBB is BBGreedy with the page-assignment stage run before
// BaurBrandes instead of after, each cycle.
func GreedyBB(g *bookgraph.Graph, best Tracker) int {
	for {
		oldCr := crossing.Total(g)
		placer.GreedyPages(g)
		newCr := crossing.Total(g)
		best.Offer(g, newCr)

		newCr = placer.Restart(g, newCr, placer.LenPages)
		newCr = placer.Restart(g, newCr, placer.GreedyPages)
		best.Offer(g, newCr)

		BaurBrandes(g, best)
		newCr = crossing.Total(g)
		if newCr == oldCr {
			return newCr
		}
		best.Offer(g, newCr)
	}
}
