// SPDX-License-Identifier: MIT
package bookgraph

// CheckPermutation verifies invariant I2: Vertices holds each id in
// [0, N) exactly once. It returns ErrDuplicateID naming the first
// violation found, or nil.
func (g *Graph) CheckPermutation() error {
	n := g.N()
	seen := make([]bool, n)
	for _, v := range g.Vertices {
		if v.ID < 0 || v.ID >= n || seen[v.ID] {
			return ErrDuplicateID
		}
		seen[v.ID] = true
	}
	return nil
}

// CheckPages verifies invariant I4: every edge's page is in [0, Pages).
// Callers that intentionally hold the unassigned-page window (placer
// restarts) should not call this until the placer has finished.
func (g *Graph) CheckPages() error {
	for _, e := range g.Edges {
		if e.Page < 0 || int(e.Page) >= g.Pages {
			return ErrPageOutOfRange
		}
	}
	return nil
}

// CheckEndpointIdentity verifies invariant I1 against a reference graph of
// the same edge count: for every edge index i, the unordered id pair of
// e_i must equal the id pair ref.Edges[i] had. This is the structural
// check the best-found tracker runs before accepting a candidate.
func (g *Graph) CheckEndpointIdentity(ref *Graph) error {
	for i, e := range g.Edges {
		re := ref.Edges[i]
		a1, a2 := g.Vertices[e.V1].ID, g.Vertices[e.V2].ID
		b1, b2 := ref.Vertices[re.V1].ID, ref.Vertices[re.V2].ID
		if (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1) {
			continue
		}
		return ErrEndpointMismatch
	}
	return nil
}

// IDPair returns the unordered pair of ids bound to edge index i.
func (g *Graph) IDPair(i int) (int, int) {
	e := g.Edges[i]
	return g.Vertices[e.V1].ID, g.Vertices[e.V2].ID
}

// PositionOfID returns the current spine position of the vertex with the
// given id, or -1 if not found. O(N); the search engine itself does not
// call it.
func (g *Graph) PositionOfID(id int) int {
	for pos, v := range g.Vertices {
		if v.ID == id {
			return pos
		}
	}
	return -1
}
