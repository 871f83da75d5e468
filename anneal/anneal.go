// SPDX-License-Identifier: MIT
// Package anneal implements the simulated annealing pass that runs between
// rounds of local search: four move families (page reassignment, adjacent
// vertex swap, vertex relocation, and a guided best-position probe) are
// drawn at random and accepted or rejected by a Metropolis criterion on a
// log-interpolated cooling schedule, with a per-run shadow tracker that
// rolls back to the best state the pass itself visited if the pass ends up
// worse than where it started.
package anneal

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/bookembed/bestfound"
	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/localsearch"
	"github.com/katalvlaran/bookembed/mutate"
	"github.com/katalvlaran/bookembed/placer"
	"github.com/katalvlaran/bookembed/posfinder"
)

// Config tunes one annealing pass. EndIter and BegIter set the iteration
// window the cooling schedule is interpolated over; T0 is the starting
// temperature, T1 the temperature the schedule asymptotically approaches.
type Config struct {
	T0       float64
	T1       float64
	BegIter  int
	EndIter  int
}

// DefaultConfig mirrors the original engine's fixed schedule constants; T0
// is supplied per call (the outer driver runs each pass twice, at T0=64
// then T0=8).
func DefaultConfig(t0 float64) Config {
	endIter := 1000
	return Config{
		T0:      t0,
		T1:      0.2,
		BegIter: endIter / 50,
		EndIter: endIter,
	}
}

// Run performs one annealing pass over g in place, using rng for every
// random draw, and offers every accepted improvement to best. It returns
// the crossing number g ends the pass with.
//
// When the sweep ends, g is set to whichever state — the pass's own final
// state, or (if strictly better) the best state visited during the pass —
// has the lower crossing count, and is then polished with
// localsearch.BBGreedy. The best visited state is kept by a scratch
// bestfound.Tracker scoped to this call only, which verifies it against a
// copy of g as it was when the pass started.
func Run(g *bookgraph.Graph, cfg Config, rng *rand.Rand, best *bestfound.Tracker) int {
	n := g.N()
	m := g.M()
	if n < 2 || m == 0 {
		return crossing.Total(g)
	}

	r1 := m
	r2 := int(math.Sqrt(float64(n))) * n
	r3 := n
	r4 := n/4 + 1

	crCnt := crossing.Total(g)
	shadow := bestfound.NewTracker("", g.Clone())
	shadow.Offer(g, crCnt)

	for iter := cfg.BegIter; iter < cfg.EndIter && crCnt > 0; iter++ {
		t := temperature(cfg, iter)

		for c := 0; c < r1; c++ {
			crCnt = tryEdgePageMove(g, rng, t, crCnt, best, shadow)
		}
		for c := 0; c < r2; c++ {
			crCnt = tryAdjacentSwap(g, rng, n, t, crCnt, best, shadow)
		}
		for c := 0; c < r3; c++ {
			crCnt = tryVertexRelocate(g, rng, n, t, crCnt, best, shadow)
		}
		for c := 0; c < r4; c++ {
			crCnt = tryBestPositionProbe(g, rng, n, t, crCnt, best, shadow)
		}
	}

	if shadow.Val() >= 0 && shadow.Val() < crCnt {
		g.LoadFrom(shadow.Graph())
		crCnt = shadow.Val()
	}
	return localsearch.BBGreedy(g, best)
}

// temperature interpolates between T0 and T1 on a log scale across
// [BegIter, EndIter), the same schedule shape as the original engine.
func temperature(cfg Config, iter int) float64 {
	return cfg.T0 + (1/math.Log(float64(cfg.BegIter))-1/math.Log(float64(iter)))*
		(cfg.T1-cfg.T0)/(1/math.Log(float64(cfg.BegIter))-1/math.Log(float64(cfg.EndIter)))
}

// accept applies the Metropolis criterion to a candidate move with signed
// crossing delta: always accept non-worsening moves, accept worsening ones
// with probability exp(-delta/t).
func accept(rng *rand.Rand, delta int, t float64) bool {
	if delta <= 0 {
		return true
	}
	return rng.Float64() < math.Exp(-float64(delta)/t)
}

func record(g *bookgraph.Graph, crCnt int, best, shadow *bestfound.Tracker) {
	best.Offer(g, crCnt)
	shadow.Offer(g, crCnt)
}

func tryEdgePageMove(g *bookgraph.Graph, rng *rand.Rand, t float64, crCnt int, best, shadow *bestfound.Tracker) int {
	if g.Pages <= 1 {
		return crCnt
	}
	idx := rng.Intn(g.M())
	e := &g.Edges[idx]
	origPage := e.Page
	delta := -crossing.EdgeCrossings(g, *e)

	p := rng.Intn(g.Pages - 1)
	pa := bookgraph.PageAssignment(p)
	if pa >= origPage {
		pa++
	}
	e.Page = pa
	delta += crossing.EdgeCrossings(g, *e)

	if delta > 0 && !accept(rng, delta, t) {
		e.Page = origPage
		return crCnt
	}
	crCnt += delta
	record(g, crCnt, best, shadow)
	return crCnt
}

func tryAdjacentSwap(g *bookgraph.Graph, rng *rand.Rand, n int, t float64, crCnt int, best, shadow *bestfound.Tracker) int {
	v1 := rng.Intn(n)
	if v1 == n-1 {
		return crCnt
	}
	delta := crossing.AdjacentSwapDelta(g, v1)
	if !accept(rng, delta, t) {
		return crCnt
	}
	mutate.SwapVertices(g, v1, v1+1)
	crCnt += delta
	record(g, crCnt, best, shadow)
	return crCnt
}

func tryVertexRelocate(g *bookgraph.Graph, rng *rand.Rand, n int, t float64, crCnt int, best, shadow *bestfound.Tracker) int {
	v1, v2 := rng.Intn(n), rng.Intn(n)
	if v1 == v2 {
		return crCnt
	}
	pagesBackup := make([]bookgraph.PageAssignment, g.M())
	for i, e := range g.Edges {
		pagesBackup[i] = e.Page
	}

	delta := -crossing.VertexCrossings(g, v1)
	mutate.MoveVertex(g, v1, v2)
	placer.GreedyAtVertex(g, v2)
	delta += crossing.VertexCrossings(g, v2)

	if delta > 0 && !accept(rng, delta, t) {
		mutate.MoveVertex(g, v2, v1)
		for i := range g.Edges {
			g.Edges[i].Page = pagesBackup[i]
		}
		return crCnt
	}
	crCnt += delta
	record(g, crCnt, best, shadow)
	return crCnt
}

func tryBestPositionProbe(g *bookgraph.Graph, rng *rand.Rand, n int, t float64, crCnt int, best, shadow *bestfound.Tracker) int {
	v1 := rng.Intn(n)
	res := posfinder.FindBestPosition(g, v1)
	delta := res.BestCr - crossing.Total(g)

	if delta > 0 && !accept(rng, delta, t) {
		return crCnt
	}
	mutate.MoveVertex(g, v1, res.BestPos)
	placer.GreedyAtVertex(g, res.BestPos)
	crCnt += delta
	record(g, crCnt, best, shadow)
	return crCnt
}
