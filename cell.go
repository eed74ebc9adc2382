package celldeco

// Decoration is a line-style text attribute drawn as a filled rectangle
// under or through the glyphs of a cell.
type Decoration uint8

const (
	// Underline is drawn below the baseline.
	Underline Decoration = iota
	// Strikeout is drawn through the middle of the glyphs.
	Strikeout

	// numDecorations bounds every per-decoration table. New decorations
	// go above this line.
	numDecorations
)

// Decorations returns every decoration kind in declaration order.
func Decorations() []Decoration {
	ds := make([]Decoration, 0, numDecorations)
	for k := range numDecorations {
		ds = append(ds, k)
	}
	return ds
}

// String returns the name of the decoration.
func (d Decoration) String() string {
	switch d {
	case Underline:
		return "underline"
	case Strikeout:
		return "strikeout"
	default:
		return "unknown"
	}
}

// Flag returns the bit of d in a Flags set.
func (d Decoration) Flag() Flags {
	return 1 << d
}

// Flags is the set of decorations active on a cell.
type Flags uint8

// FlagNone is the empty decoration set.
const FlagNone Flags = 0

// Has reports whether d is in the set.
func (f Flags) Has(d Decoration) bool {
	return f&d.Flag() != 0
}

// With returns the set with d added.
func (f Flags) With(d Decoration) Flags {
	return f | d.Flag()
}

// Without returns the set with d removed.
func (f Flags) Without(d Decoration) Flags {
	return f &^ d.Flag()
}

// Cell is one character position in the terminal grid with the attributes
// needed to draw its decorations.
//
// Column values are strictly increasing within a line in traversal order but
// need not be contiguous.
type Cell struct {
	Line   int
	Column int
	Fg     RGBA
	Flags  Flags
}
