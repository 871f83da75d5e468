// SPDX-License-Identifier: MIT
// Package bookfmt reads and writes the Graph Drawing Contest book-embedding
// challenge format: vertex count, page count, the id of each vertex in
// spine order, then one line per edge giving the ids of its endpoints and
// its page in brackets. Lines may carry a trailing "#" comment; blank
// lines are ignored.
package bookfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bookembed/bookgraph"
)

// Read parses the challenge format from r into a new Graph. Vertex ids in
// the input need not equal spine positions; edges refer to ids, which Read
// translates into positions via the per-id table built while reading the
// vertex-order section.
func Read(r io.Reader) (*bookgraph.Graph, error) {
	sc := newLineScanner(r)

	n, err := sc.number()
	if err != nil {
		return nil, fmt.Errorf("bookfmt: vertex count: %w", err)
	}
	pages, err := sc.number()
	if err != nil {
		return nil, fmt.Errorf("bookfmt: page count: %w", err)
	}

	posOfID := make([]int, n)
	idAtPos := make([]int, n)
	for i := range posOfID {
		posOfID[i] = -1
	}
	for pos := 0; pos < n; pos++ {
		id, err := sc.number()
		if err != nil {
			return nil, fmt.Errorf("bookfmt: vertex order entry %d: %w", pos, err)
		}
		if id < 0 || id >= n || posOfID[id] != -1 {
			return nil, fmt.Errorf("bookfmt: vertex order entry %d: bad or duplicate id %d", pos, id)
		}
		posOfID[id] = pos
		idAtPos[pos] = id
	}

	g := bookgraph.New(n, pages)
	for pos, id := range idAtPos {
		g.Vertices[pos] = bookgraph.Vertex{ID: id}
	}

	for {
		line, ok := sc.next()
		if !ok {
			break
		}
		e, err := parseEdgeLine(line, posOfID)
		if err != nil {
			return nil, err
		}
		g.AddEdge(e.v1, e.v2, e.page)
	}

	return g, nil
}

type parsedEdge struct {
	v1, v2 int
	page   bookgraph.PageAssignment
}

func parseEdgeLine(line string, posOfID []int) (parsedEdge, error) {
	open := strings.IndexByte(line, '[')
	close := strings.IndexByte(line, ']')
	if open < 0 || close < 0 || close < open {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: missing '[' or ']'", line)
	}
	head := strings.Fields(line[:open])
	if len(head) != 2 {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: expected two endpoint ids", line)
	}
	id1, err := strconv.Atoi(head[0])
	if err != nil {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: %w", line, err)
	}
	id2, err := strconv.Atoi(head[1])
	if err != nil {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: %w", line, err)
	}
	pageStr := strings.TrimSpace(line[open+1 : close])
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: bad page %q: %w", line, pageStr, err)
	}
	if id1 < 0 || id1 >= len(posOfID) || id2 < 0 || id2 >= len(posOfID) {
		return parsedEdge{}, fmt.Errorf("bookfmt: edge line %q: endpoint id out of range", line)
	}
	return parsedEdge{v1: posOfID[id1], v2: posOfID[id2], page: bookgraph.PageAssignment(page)}, nil
}

// Write serializes g in the challenge format: vertex count, page count, the
// id of each vertex in spine order, then one "id1 id2 [page]" line per
// edge, in edge-index order.
func Write(w io.Writer, g *bookgraph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.N()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, g.Pages); err != nil {
		return err
	}
	for _, v := range g.Vertices {
		if _, err := fmt.Fprintln(bw, v.ID); err != nil {
			return err
		}
	}
	for _, e := range g.Edges {
		id1, id2 := g.Vertices[e.V1].ID, g.Vertices[e.V2].ID
		if _, err := fmt.Fprintf(bw, "%d %d [%d]\n", id1, id2, e.Page); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// lineScanner yields non-empty, comment-stripped lines, mirroring the
// original loader's mygetline: anything from the first '#' onward is
// discarded, and whitespace-only lines are skipped.
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

func (l *lineScanner) next() (string, bool) {
	for l.sc.Scan() {
		line := l.sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

func (l *lineScanner) number() (int, error) {
	line, ok := l.next()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("bookfmt: expected a number, got %q", line)
	}
	return strconv.Atoi(fields[0])
}
