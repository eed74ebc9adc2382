package grid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/celldeco"
)

// Palette resolves tcell colors to concrete RGBA values.
type Palette struct {
	// Foreground replaces tcell.ColorDefault in the foreground.
	Foreground celldeco.RGBA

	// Background replaces tcell.ColorDefault in the background.
	Background celldeco.RGBA

	// ANSI optionally overrides the 16 basic colors, indexed from
	// tcell.ColorBlack. When nil, tcell's standard values are used.
	ANSI *[16]celldeco.RGBA
}

// DefaultPalette returns light-gray on black with tcell's standard colors.
func DefaultPalette() Palette {
	return Palette{
		Foreground: celldeco.RGB8(0xd0, 0xd0, 0xd0),
		Background: celldeco.Black,
	}
}

// Resolve returns the RGBA value of c. Default and invalid colors resolve to
// def.
func (p Palette) Resolve(c tcell.Color, def celldeco.RGBA) celldeco.RGBA {
	if p.ANSI != nil && c >= tcell.ColorBlack && c <= tcell.ColorWhite {
		return p.ANSI[c-tcell.ColorBlack]
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return def
	}
	return celldeco.RGB8(uint8(r), uint8(g), uint8(b))
}

// foreground returns the drawn foreground of a style, honoring reverse video.
func (p Palette) foreground(style tcell.Style) celldeco.RGBA {
	fg, bg, attrs := style.Decompose()
	if attrs&tcell.AttrReverse != 0 {
		return p.Resolve(bg, p.Background)
	}
	return p.Resolve(fg, p.Foreground)
}

// decorations maps tcell attributes to decoration flags.
func decorations(style tcell.Style) celldeco.Flags {
	_, _, attrs := style.Decompose()
	flags := celldeco.FlagNone
	if attrs&tcell.AttrUnderline != 0 {
		flags = flags.With(celldeco.Underline)
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		flags = flags.With(celldeco.Strikeout)
	}
	return flags
}
