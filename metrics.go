package celldeco

import "math"

// LineMetric places one decoration relative to the baseline.
type LineMetric struct {
	// Position is the signed distance of the stroke center above the
	// baseline. Underlines usually have a negative position.
	Position float64

	// Thickness is the stroke height in pixels.
	Thickness float64
}

// Metrics holds the font metrics needed to place decorations.
//
// Lines has exactly one entry per Decoration, so every decoration kind always
// has a metric.
type Metrics struct {
	// Descent is the signed descent of the font (negative, below the baseline).
	Descent float64

	// Lines holds the metric of each decoration, indexed by Decoration.
	Lines [numDecorations]LineMetric
}

// Line returns the metric for decoration d.
func (m Metrics) Line(d Decoration) LineMetric {
	return m.Lines[d]
}

// WithLine returns a copy of m with the metric for d replaced.
func (m Metrics) WithLine(d Decoration, lm LineMetric) Metrics {
	m.Lines[d] = lm
	return m
}

// Validate reports the first non-finite value or negative thickness as a
// *ConfigError wrapping ErrInvalidMetrics.
func (m Metrics) Validate() error {
	if !finite(m.Descent) {
		return &ConfigError{Field: "Descent", Value: m.Descent, Err: ErrInvalidMetrics}
	}
	for k := range numDecorations {
		lm := m.Lines[k]
		if !finite(lm.Position) {
			return &ConfigError{Field: k.String() + ".Position", Value: lm.Position, Err: ErrInvalidMetrics}
		}
		if !finite(lm.Thickness) || lm.Thickness < 0 {
			return &ConfigError{Field: k.String() + ".Thickness", Value: lm.Thickness, Err: ErrInvalidMetrics}
		}
	}
	return nil
}

// SizeInfo describes the pixel geometry of the terminal grid.
type SizeInfo struct {
	CellWidth  float64
	CellHeight float64
	PaddingX   float64
	PaddingY   float64
}

// Validate reports a non-positive cell dimension or a non-finite padding as
// a *ConfigError wrapping ErrInvalidSize.
func (s SizeInfo) Validate() error {
	switch {
	case !finite(s.CellWidth) || s.CellWidth <= 0:
		return &ConfigError{Field: "CellWidth", Value: s.CellWidth, Err: ErrInvalidSize}
	case !finite(s.CellHeight) || s.CellHeight <= 0:
		return &ConfigError{Field: "CellHeight", Value: s.CellHeight, Err: ErrInvalidSize}
	case !finite(s.PaddingX):
		return &ConfigError{Field: "PaddingX", Value: s.PaddingX, Err: ErrInvalidSize}
	case !finite(s.PaddingY):
		return &ConfigError{Field: "PaddingY", Value: s.PaddingY, Err: ErrInvalidSize}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
