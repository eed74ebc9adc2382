package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// gotextParser implements FontParser using go-text/typesetting, which reads
// the decoration records of both the post and OS/2 tables.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// go-text does not decode the name table; names are best effort.
	names, err := opentype.Parse(data)
	if err != nil {
		names = nil
	}

	return &gotextParsedFont{face: face, names: names}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// font.Face is not safe for concurrent use, so every access holds mu.
type gotextParsedFont struct {
	mu    sync.Mutex
	face  *font.Face
	names *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	if f.names == nil {
		return ""
	}
	return sfntName(f.names, sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *gotextParsedFont) FullName() string {
	if f.names == nil {
		return ""
	}
	return sfntName(f.names, sfnt.NameIDFull)
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.face.Upem())
}

// Advance implements ParsedFont.Advance.
func (f *gotextParsedFont) Advance(r rune, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, _ := f.face.NominalGlyph(r)
	adv := f.face.HorizontalAdvance(gid)
	return scale(float64(adv), ppem, int(f.face.Upem()))
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	upem := int(f.face.Upem())
	px := func(v float32) float64 { return scale(float64(v), ppem, upem) }

	var m FontMetrics
	if ext, ok := f.face.FontHExtents(); ok {
		m.Ascent = px(ext.Ascender)
		m.Descent = px(ext.Descender)
		m.LineGap = px(ext.LineGap)
	}

	m.UnderlinePosition = px(f.face.LineMetric(font.UnderlinePosition))
	m.UnderlineThickness = px(f.face.LineMetric(font.UnderlineThickness))
	m.StrikeoutPosition = px(f.face.LineMetric(font.StrikethroughPosition))
	m.StrikeoutThickness = px(f.face.LineMetric(font.StrikethroughThickness))

	if m.UnderlineThickness <= 0 {
		m.UnderlineThickness = ppem / 14
		m.UnderlinePosition = m.Descent / 2
	}
	if m.StrikeoutThickness <= 0 {
		m.StrikeoutThickness = m.UnderlineThickness
		m.StrikeoutPosition = m.Ascent / 4
	}

	return m
}
