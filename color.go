package celldeco

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
//
// RGBA is comparable: two cells continue the same decoration run only if
// their foreground colors are equal with ==.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied and scaled to [0, 65535].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 65535)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 65535)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 65535)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 65535)
	return r, g, b, a
}

// NRGBA converts the color to an 8-bit non-premultiplied color.NRGBA.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) RGBA {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque color.
func ParseColor(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("celldeco: invalid color %q: %w", s, err)
	}
	return RGB(c.R, c.G, c.B), nil
}

// Hex formats the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
