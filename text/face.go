package text

import (
	"math"

	"github.com/gogpu/celldeco"
)

// Face is a view of a FontSource at one size.
// Face is lightweight and safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// FontMetrics returns the raw font metrics at this face's size.
func (f *Face) FontMetrics() (FontMetrics, error) {
	return f.source.fontMetrics(f.size)
}

// Metrics returns the decoration metrics at this face's size.
func (f *Face) Metrics() (celldeco.Metrics, error) {
	fm, err := f.FontMetrics()
	if err != nil {
		return celldeco.Metrics{}, err
	}
	return DecorationMetrics(fm), nil
}

// CellSize returns the grid cell geometry for this face with the given
// padding. The cell width is the rounded advance of the configured cell rune
// and the height the ceiling of the line height plus any extra spacing.
func (f *Face) CellSize(paddingX, paddingY float64) (celldeco.SizeInfo, error) {
	fm, err := f.FontMetrics()
	if err != nil {
		return celldeco.SizeInfo{}, err
	}
	adv, err := f.source.advance(f.config.cellRune, f.size)
	if err != nil {
		return celldeco.SizeInfo{}, err
	}

	return celldeco.SizeInfo{
		CellWidth:  math.Max(math.Round(adv), 1),
		CellHeight: math.Max(math.Ceil(fm.Height()+f.config.lineSpacing), 1),
		PaddingX:   paddingX,
		PaddingY:   paddingY,
	}, nil
}
