package celldeco

import "image"

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pixels snaps the rectangle to the pixel grid by rounding each edge.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		roundInt(r.X),
		roundInt(r.Y),
		roundInt(r.X+r.Width),
		roundInt(r.Y+r.Height),
	)
}

// ColoredRect is a rectangle paired with its fill color.
type ColoredRect struct {
	Rect
	Color RGBA
}
