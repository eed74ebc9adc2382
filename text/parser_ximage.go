package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as each call gets its own
// sfnt.Buffer.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	return sfntName(f.font, sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return sfntName(f.font, sfnt.NameIDFull)
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// Advance implements ParsedFont.Advance.
func (f *ximageParsedFont) Advance(r rune, ppem float64) float64 {
	var buf sfnt.Buffer

	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	advance, err := f.font.GlyphAdvance(&buf, gid, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	fm, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	// x/image reports the descent as a positive distance.
	m := FontMetrics{
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: -fixedToFloat(fm.Descent),
		LineGap: fixedToFloat(fm.Height) - fixedToFloat(fm.Ascent) - fixedToFloat(fm.Descent),
		XHeight: fixedToFloat(fm.XHeight),
	}

	upem := f.UnitsPerEm()
	if post := f.font.PostTable(); post != nil {
		m.UnderlinePosition = scale(float64(post.UnderlinePosition), ppem, upem)
		m.UnderlineThickness = scale(float64(post.UnderlineThickness), ppem, upem)
	}
	if m.UnderlineThickness <= 0 {
		m.UnderlineThickness = ppem / 14
		m.UnderlinePosition = m.Descent / 2
	}

	// sfnt does not expose the OS/2 strikeout record.
	m.StrikeoutPosition = m.XHeight / 2
	m.StrikeoutThickness = m.UnderlineThickness

	return m
}

func sfntName(f *sfnt.Font, id sfnt.NameID) string {
	name, err := f.Name(nil, id)
	if err != nil {
		return ""
	}
	return name
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
