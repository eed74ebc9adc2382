package main

import (
	"testing"

	"github.com/gogpu/celldeco"
	"github.com/gogpu/celldeco/grid"
)

func TestBuildGridRuns(t *testing.T) {
	var m celldeco.Metrics
	m.Descent = -3
	m.Lines[celldeco.Underline] = celldeco.LineMetric{Position: -1, Thickness: 1}
	m.Lines[celldeco.Strikeout] = celldeco.LineMetric{Position: 4, Thickness: 1}
	size := celldeco.SizeInfo{CellWidth: 8, CellHeight: 16}

	r, err := celldeco.NewRenderer(m, size)
	if err != nil {
		t.Fatal(err)
	}
	rects := r.Render(buildGrid().Cells(grid.DefaultPalette()))

	perLine := map[int]int{}
	for _, cr := range rects {
		perLine[int(cr.Y)/int(size.CellHeight)]++
	}

	want := map[int]int{
		0: 1, // one long run
		1: 3, // three colors
		2: 2, // split by a gap
		3: 3, // strikeout, then underline and strikeout on the second word
		4: 1, // wide glyphs and their spacers form one run
		6: 1,
	}
	for line, n := range want {
		if perLine[line] != n {
			t.Errorf("line %d: %d rects, want %d", line, perLine[line], n)
		}
	}
}
