package text

import (
	"fmt"
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Advance returns the horizontal advance of r in pixels at ppem
	// pixels per em. Missing runes use the advance of the notdef glyph.
	Advance(r rune, ppem float64) float64

	// Metrics returns the font metrics in pixels at ppem pixels per em.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size, in pixels.
// Vertical values follow the font convention: positive above the baseline.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the signed distance to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// UnderlinePosition is the underline offset from the baseline (usually negative).
	UnderlinePosition float64

	// UnderlineThickness is the underline stroke height.
	UnderlineThickness float64

	// StrikeoutPosition is the strikeout offset from the baseline.
	StrikeoutPosition float64

	// StrikeoutThickness is the strikeout stroke height.
	StrikeoutThickness float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// defaultParserName is the name of the default parser.
const defaultParserName = "gotext"

var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"gotext": gotextParser{},
		"ximage": ximageParser{},
	}
)

// RegisterParser registers a font parser under name, replacing any parser
// already registered with that name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}

// scale converts a value in font units to pixels.
func scale(units, ppem float64, upem int) float64 {
	if upem <= 0 {
		return 0
	}
	return units * ppem / float64(upem)
}
