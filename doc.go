// Package bookembed is a heuristic engine for minimizing edge crossings in
// a book embedding of a graph.
//
// A book embedding fixes a linear order of the vertices (the spine) and
// assigns every edge to one of a fixed number of half-plane "pages"
// attached along it. Two edges on the same page cross iff their endpoint
// intervals on the spine properly interleave; the engine searches over
// both the spine order and the page assignment to minimize the total
// number of such crossings.
//
// Subpackages:
//
//	bookgraph/   — the Graph/Vertex/Edge state and its structural invariants
//	crossing/    — the crossing test and incremental crossing-count primitives
//	mutate/      — spine-order primitives: move a vertex, swap two vertices
//	placer/      — per-edge page assignment: greedy, length-ordered, restart
//	posfinder/   — best-spine-slot search for a single vertex
//	localsearch/ — the Baur-Brandes sweep and its greedy/page-assignment loops
//	anneal/      — simulated annealing and the outer multi-restart search
//	bestfound/   — the monotone best-embedding tracker and its verification
//	bookfmt/     — the challenge-format reader/writer
//	gengraph/    — graph-family generators for benchmarking and testing
//	matrixview/  — dense adjacency/incidence views of an embedding
//
// cmd/bookembed runs the search end to end; cmd/bookgen produces instances
// to run it against.
package bookembed
