// Package schematic finds the part numbers and gear ratios of an engine
// schematic: a grid of digits, '.' filler and symbols.
package schematic

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// A Grid is an engine schematic. Rows may differ in length. A Grid is
// never modified after it's built, so its methods are safe for
// concurrent use.
type Grid struct {
	rows []string
}

// NewGrid returns a Grid over rows. It copies the slice.
func NewGrid(rows []string) *Grid {
	return &Grid{rows: slices.Clone(rows)}
}

// Parse splits s on '\n' into a Grid.
func Parse(s string) *Grid {
	if s == "" {
		return &Grid{}
	}
	return &Grid{rows: strings.Split(s, "\n")}
}

// Read reads one row per line from r.
func Read(r io.Reader) (*Grid, error) {
	g := &Grid{}
	s := bufio.NewScanner(r)
	for s.Scan() {
		g.rows = append(g.rows, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.rows) }

// Row returns row y, or "" if y is out of range.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= len(g.rows) {
		return ""
	}
	return g.rows[y]
}

// neighborRows returns the row range [lo, hi] around y clamped to g.
func (g *Grid) neighborRows(y int) (lo, hi int) {
	return max(y-1, 0), min(y+1, len(g.rows)-1)
}
