// SPDX-License-Identifier: MIT
package anneal

import (
	"math/rand"

	"github.com/katalvlaran/bookembed/bestfound"
	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/localsearch"
	"github.com/katalvlaran/bookembed/mutate"
	"github.com/katalvlaran/bookembed/placer"
)

// Rounds is the number of outer search iterations Search runs, each pair of
// high- then low-temperature annealing passes over a different starting
// embedding.
const Rounds = 5

// startGraph picks the starting embedding for outer iteration i of Search.
// Iteration 0 reuses the GreedyBB result, iteration 1 the BBGreedy result,
// every fifth iteration thereafter restarts from the current best found so
// far, and all other iterations restart from a randomly shuffled copy of
// the original graph. The four cases of the switch are mutually exclusive,
// so every iteration loads exactly one starting embedding (see DESIGN.md).
func startGraph(i int, origGr, greedyBB, bbGreedy *bookgraph.Graph, best *bestfound.Tracker, rng *rand.Rand) *bookgraph.Graph {
	g := bookgraph.New(origGr.N(), origGr.Pages)
	switch {
	case i == 0:
		g.LoadFrom(greedyBB)
	case i == 1:
		g.LoadFrom(bbGreedy)
	case i%5 == 4:
		g.LoadFrom(best.Graph())
	default:
		g.LoadFrom(origGr)
		n := g.N()
		for j := 0; j < 10*n; j++ {
			v1, v2 := rng.Intn(n), rng.Intn(n)
			if v1 == v2 {
				continue
			}
			mutate.MoveVertex(g, v1, v2)
		}
		cr := crossing.Total(g)
		placer.Restart(g, cr, placer.LenPages)
	}
	return g
}

// Search runs the full outer orchestration described in the engine design:
// one GreedyBB pass, one BBGreedy pass, then Rounds iterations each
// restarting from a different starting embedding and running one
// high-temperature and one low-temperature annealing pass. Every candidate
// embedding visited is offered to best; Search itself returns best's final
// crossing count.
func Search(origGr *bookgraph.Graph, best *bestfound.Tracker, rng *rand.Rand) int {
	best.Offer(origGr, crossing.Total(origGr))

	graphGBB := origGr.Clone()
	localsearch.GreedyBB(graphGBB, best)
	best.Offer(graphGBB, -1)

	graphBBG := origGr.Clone()
	localsearch.BBGreedy(graphBBG, best)
	best.Offer(graphBBG, -1)

	for i := 0; i < Rounds; i++ {
		g := startGraph(i, origGr, graphGBB, graphBBG, best, rng)

		Run(g, DefaultConfig(64), rng, best)
		best.Offer(g, -1)

		Run(g, DefaultConfig(8), rng, best)
		best.Offer(g, -1)
	}

	return best.Val()
}
