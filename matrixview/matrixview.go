// SPDX-License-Identifier: MIT
// Package matrixview renders a book-embedded graph as dense diagnostic
// matrices: a per-page adjacency matrix (one N×N 0/1 matrix per page) and a
// vertex-by-edge incidence matrix annotated with each edge's page. These
// are read-only views for inspection and test assertions, not part of the
// search engine itself.
package matrixview

import (
	"errors"

	"github.com/katalvlaran/bookembed/bookgraph"
)

// ErrNilGraph is returned by every constructor when handed a nil graph.
var ErrNilGraph = errors.New("matrixview: nil graph")

// PageAdjacency is an N×N dense matrix per page: Data[p][i][j] is 1 if some
// edge on page p joins the vertices currently at positions i and j, else 0.
type PageAdjacency struct {
	N    int
	Data [][][]uint8
}

// NewPageAdjacency builds a PageAdjacency snapshot of g's current spine
// ordering and page assignment. Time O(pages*N^2 + m); memory O(pages*N^2).
func NewPageAdjacency(g *bookgraph.Graph) (PageAdjacency, error) {
	if g == nil {
		return PageAdjacency{}, ErrNilGraph
	}
	n := g.N()
	data := make([][][]uint8, g.Pages)
	for p := range data {
		rows := make([][]uint8, n)
		for i := range rows {
			rows[i] = make([]uint8, n)
		}
		data[p] = rows
	}
	for _, e := range g.Edges {
		if !e.Page.IsAssigned() {
			continue
		}
		p := int(e.Page)
		data[p][e.V1][e.V2] = 1
		data[p][e.V2][e.V1] = 1
	}
	return PageAdjacency{N: n, Data: data}, nil
}

// CrossingsOnPage counts the 1-entries that interleave within a single
// page's matrix directly from the dense data, as a cross-check against
// crossing.Total's incremental computation.
func (pa PageAdjacency) CrossingsOnPage(page int) int {
	if page < 0 || page >= len(pa.Data) {
		return 0
	}
	m := pa.Data[page]
	type interval struct{ lo, hi int }
	var ivs []interval
	for i := 0; i < pa.N; i++ {
		for j := i + 1; j < pa.N; j++ {
			if m[i][j] == 1 {
				ivs = append(ivs, interval{i, j})
			}
		}
	}
	count := 0
	for a := 0; a < len(ivs); a++ {
		for b := a + 1; b < len(ivs); b++ {
			x, y := ivs[a], ivs[b]
			if (x.lo < y.lo && y.lo < x.hi && x.hi < y.hi) ||
				(y.lo < x.lo && x.lo < y.hi && y.hi < x.hi) {
				count++
			}
		}
	}
	return count
}

// Incidence is a vertex-by-edge incidence matrix: Data[v][e] holds
// 1+int(page) if the vertex at position v is an endpoint of edge e, else 0,
// so the page an incident edge occupies can be read directly off the cell.
type Incidence struct {
	Rows int
	Cols int
	Data [][]int
}

// NewIncidence builds an Incidence snapshot of g.
func NewIncidence(g *bookgraph.Graph) (Incidence, error) {
	if g == nil {
		return Incidence{}, ErrNilGraph
	}
	n, m := g.N(), g.M()
	data := make([][]int, n)
	for i := range data {
		data[i] = make([]int, m)
	}
	for idx, e := range g.Edges {
		data[e.V1][idx] = 1 + int(e.Page)
		data[e.V2][idx] = 1 + int(e.Page)
	}
	return Incidence{Rows: n, Cols: m, Data: data}, nil
}
