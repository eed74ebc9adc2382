package grid

import (
	"iter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/gogpu/celldeco"
)

// cell is one grid position. An unused cell is skipped by traversal.
type cell struct {
	text   string
	style  tcell.Style
	spacer bool
	used   bool
}

// Grid is a fixed-size matrix of styled cells.
// Grid is not safe for concurrent use.
type Grid struct {
	cols, rows int
	cells      []cell
}

// New creates an empty grid. Non-positive dimensions yield an empty grid.
func New(cols, rows int) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
	}
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// SetString writes s starting at (line, col) and returns the column after
// the last written cell. Text is split into grapheme clusters; wide clusters
// take two columns. Writing stops at the end of the row, and a wide cluster
// that does not fit is dropped.
func (g *Grid) SetString(line, col int, s string, style tcell.Style) int {
	if line < 0 || line >= g.rows || col < 0 {
		return col
	}

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := clusterWidth(gr.Runes())
		if w == 0 {
			continue
		}
		if col+w > g.cols {
			break
		}

		g.cells[line*g.cols+col] = cell{text: gr.Str(), style: style, used: true}
		if w == 2 {
			g.cells[line*g.cols+col+1] = cell{style: style, spacer: true, used: true}
		}
		col += w
	}
	return col
}

// Text returns the cluster stored at (line, col) and whether the cell is
// used. Spacer cells report an empty cluster.
func (g *Grid) Text(line, col int) (string, bool) {
	if line < 0 || line >= g.rows || col < 0 || col >= g.cols {
		return "", false
	}
	c := g.cells[line*g.cols+col]
	return c.text, c.used
}

// Cells returns the used cells in row-major, column-ascending order, with
// colors resolved through p and decoration flags taken from the style.
func (g *Grid) Cells(p Palette) iter.Seq[celldeco.Cell] {
	return func(yield func(celldeco.Cell) bool) {
		for line := range g.rows {
			row := g.cells[line*g.cols : (line+1)*g.cols]
			for col, c := range row {
				if !c.used {
					continue
				}
				dc := celldeco.Cell{
					Line:   line,
					Column: col,
					Fg:     p.foreground(c.style),
					Flags:  decorations(c.style),
				}
				if !yield(dc) {
					return
				}
			}
		}
	}
}

// clusterWidth returns the number of columns a grapheme cluster occupies,
// judged by its first rune.
func clusterWidth(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	r := runes[0]
	if r < 0x20 || r == 0x7f {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
