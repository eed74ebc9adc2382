// Package celldeco computes the filled rectangles that draw text decorations
// (underline, strikeout) across the cells of a terminal grid.
//
// # Overview
//
// Decorations are drawn as one rectangle per run: a contiguous span of cells
// on one line that carry the same decoration and foreground color and sit in
// adjacent columns. Drawing runs instead of single cells avoids seams between
// cells and keeps the number of draw calls low.
//
// # Quick Start
//
//	r, err := celldeco.NewRenderer(metrics, size)
//	if err != nil {
//	    return err
//	}
//
//	t := r.Begin()
//	for _, c := range cells {
//	    t.Update(c)
//	}
//	t.Push(cursorRect, cursorColor) // bypasses merging
//	rects := t.Rects()
//
// # Components
//
//   - Tracker: per-pass run merging (Update, Push, Rects)
//   - MapRun: pure mapping of a closed run to pixel space
//   - Renderer: validated metrics and cell size shared across passes
//   - CursorRects, SelectionRects: producers of bypass rectangles
//   - Pixmap: a software paint target for the resulting rectangles
//
// Font metrics come from the text sub-package and cell streams from the grid
// sub-package; both are optional.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X increases right and Y increases
// down. Decoration positions are measured upwards from the baseline, so an
// underline normally has a negative position.
package celldeco
