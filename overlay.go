package celldeco

import "math"

// CursorShape selects how the cursor is drawn.
type CursorShape int

const (
	// CursorBlock fills the whole cell.
	CursorBlock CursorShape = iota
	// CursorUnderline draws a bar along the bottom of the cell.
	CursorUnderline
	// CursorBeam draws a bar along the left edge of the cell.
	CursorBeam
	// CursorHollow draws the outline of the cell.
	CursorHollow
)

// String returns the name of the cursor shape.
func (s CursorShape) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorUnderline:
		return "underline"
	case CursorBeam:
		return "beam"
	case CursorHollow:
		return "hollow"
	default:
		return "unknown"
	}
}

// Point is a cell position in the grid.
type Point struct {
	Line   int
	Column int
}

// Before reports whether p comes before q in row-major order.
func (p Point) Before(q Point) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// CursorRects returns the rectangles for a cursor at the given cell.
// thickness sets the bar and outline width and is raised to one pixel.
func CursorRects(line, column int, shape CursorShape, s SizeInfo, thickness float64) []Rect {
	x := float64(column)*s.CellWidth + s.PaddingX
	y := float64(line)*s.CellHeight + s.PaddingY
	w, h := s.CellWidth, s.CellHeight
	t := math.Round(math.Max(thickness, 1))

	switch shape {
	case CursorUnderline:
		return []Rect{{X: x, Y: y + h - t, Width: w, Height: t}}
	case CursorBeam:
		return []Rect{{X: x, Y: y, Width: t, Height: h}}
	case CursorHollow:
		return []Rect{
			{X: x, Y: y, Width: w, Height: t},
			{X: x, Y: y + h - t, Width: w, Height: t},
			{X: x, Y: y + t, Width: t, Height: h - 2*t},
			{X: x + w - t, Y: y + t, Width: t, Height: h - 2*t},
		}
	default:
		return []Rect{{X: x, Y: y, Width: w, Height: h}}
	}
}

// SelectionRects returns one rectangle per line covered by a selection from
// one cell to another, both inclusive. Lines strictly between the endpoints
// span all columns. The endpoints may be given in either order.
func SelectionRects(from, to Point, columns int, s SizeInfo) []Rect {
	if to.Before(from) {
		from, to = to, from
	}
	if columns <= 0 {
		return nil
	}

	rects := make([]Rect, 0, to.Line-from.Line+1)
	for line := from.Line; line <= to.Line; line++ {
		first, last := 0, columns-1
		if line == from.Line {
			first = from.Column
		}
		if line == to.Line {
			last = to.Column
		}
		first = max(first, 0)
		last = min(last, columns-1)
		if last < first {
			continue
		}
		rects = append(rects, Rect{
			X:      float64(first)*s.CellWidth + s.PaddingX,
			Y:      float64(line)*s.CellHeight + s.PaddingY,
			Width:  float64(last-first+1) * s.CellWidth,
			Height: s.CellHeight,
		})
	}
	return rects
}
