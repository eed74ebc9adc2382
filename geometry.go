package celldeco

import "math"

// MapRun converts a closed run of decoration d, spanning from the left edge
// of start to the right edge of end, into a filled rectangle.
//
// The horizontal extent stays sub-pixel accurate; y and the stroke height are
// rounded to whole pixels. The stroke is at least one pixel thick and never
// extends below the bottom of its cell row. The fill color is the foreground
// of start.
func MapRun(start, end Cell, d Decoration, m Metrics, s SizeInfo) ColoredRect {
	startX := float64(start.Column) * s.CellWidth
	endX := float64(end.Column+1) * s.CellWidth
	width := endX - startX

	lm := m.Line(d)
	thickness := math.Max(lm.Thickness, 1)

	cellBottom := float64(start.Line+1) * s.CellHeight
	baseline := cellBottom + m.Descent

	y := baseline - lm.Position - thickness/2
	if maxY := cellBottom - thickness; y > maxY {
		y = maxY
	}

	return ColoredRect{
		Rect: Rect{
			X:      startX + s.PaddingX,
			Y:      math.Round(y) + s.PaddingY,
			Width:  width,
			Height: math.Round(thickness),
		},
		Color: start.Fg,
	}
}

func roundInt(x float64) int {
	return int(math.Round(x))
}
