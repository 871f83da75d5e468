// SPDX-License-Identifier: MIT
// Package gengraph builds bookgraph.Graph test instances of the families
// the engine is routinely benchmarked against: complete graphs, complete
// multipartite graphs with equal-size parts, hypercubes, circulants, and
// Erdos-Renyi random graphs. Every generator emits vertex id i == initial
// spine position i and leaves every edge on page 0, matching the
// challenge-format generators' output.
package gengraph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bookembed/bookgraph"
)

// Sentinel errors for out-of-range generator parameters.
var (
	ErrTooFewVertices = errors.New("gengraph: vertex count must be positive")
	ErrTooFewPages    = errors.New("gengraph: page count must be positive")
	ErrBadProbability = errors.New("gengraph: edge probability must be in (0, 100]")
)

// Complete returns the complete graph K_n with pages page slots, every
// edge starting on page 0.
func Complete(n, pages int) (*bookgraph.Graph, error) {
	if n <= 0 {
		return nil, ErrTooFewVertices
	}
	if pages <= 0 {
		return nil, ErrTooFewPages
	}
	g := bookgraph.New(n, pages)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j, 0)
		}
	}
	return g, nil
}

// CompleteMultipartite returns the complete t-partite graph with t parts of
// partSize vertices each; two vertices are joined iff they belong to
// different parts.
func CompleteMultipartite(partSize, parts, pages int) (*bookgraph.Graph, error) {
	if partSize <= 0 || parts <= 0 {
		return nil, ErrTooFewVertices
	}
	if pages <= 0 {
		return nil, ErrTooFewPages
	}
	n := partSize * parts
	g := bookgraph.New(n, pages)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if i/partSize != j/partSize {
				g.AddEdge(i, j, 0)
			}
		}
	}
	return g, nil
}

// Hypercube returns the d-dimensional hypercube graph Q_d, with 2^d
// vertices joined whenever their indices differ in exactly one bit.
func Hypercube(d, pages int) (*bookgraph.Graph, error) {
	if d <= 0 {
		return nil, ErrTooFewVertices
	}
	if pages <= 0 {
		return nil, ErrTooFewPages
	}
	n := 1 << uint(d)
	g := bookgraph.New(n, pages)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if popcount(i^j) == 1 {
				g.AddEdge(i, j, 0)
			}
		}
	}
	return g, nil
}

func popcount(x int) int {
	bits := 0
	for x > 0 {
		bits += x & 1
		x >>= 1
	}
	return bits
}

// Circulant returns the circulant graph on n vertices where u and v are
// joined iff (u-v) mod n or (v-u) mod n appears in lengths; each edge
// {i, (i+l) mod n} is added once.
func Circulant(n, pages int, lengths []int, rng *rand.Rand) (*bookgraph.Graph, error) {
	if n <= 0 {
		return nil, ErrTooFewVertices
	}
	if pages <= 0 {
		return nil, ErrTooFewPages
	}
	_ = rng // circulant generation is deterministic; rng kept for signature symmetry
	g := bookgraph.New(n, pages)
	seen := make(map[[2]int]bool, n*len(lengths))
	for i := 0; i < n; i++ {
		for _, l := range lengths {
			j := ((i+l)%n + n) % n
			if i == j {
				continue
			}
			a, b := i, j
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			g.AddEdge(a, b, 0)
		}
	}
	return g, nil
}

// Random returns an Erdos-Renyi graph on n vertices where each of the
// n*(n-1)/2 possible edges is included independently with probability
// percent/100.
func Random(n, pages int, percent float64, rng *rand.Rand) (*bookgraph.Graph, error) {
	if n <= 0 {
		return nil, ErrTooFewVertices
	}
	if pages <= 0 {
		return nil, ErrTooFewPages
	}
	if percent <= 0.0 || percent > 100.0 {
		return nil, ErrBadProbability
	}
	if rng == nil {
		return nil, fmt.Errorf("gengraph: Random requires a non-nil rng")
	}
	g := bookgraph.New(n, pages)
	threshold := percent / 100.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < threshold {
				g.AddEdge(i, j, 0)
			}
		}
	}
	return g, nil
}
