package text

import "github.com/gogpu/celldeco"

// DecorationMetrics converts font metrics into the metrics that place
// decorations. Both use the font convention of positive values above the
// baseline, so values are copied as-is.
func DecorationMetrics(fm FontMetrics) celldeco.Metrics {
	var m celldeco.Metrics
	m.Descent = fm.Descent
	m.Lines[celldeco.Underline] = celldeco.LineMetric{
		Position:  fm.UnderlinePosition,
		Thickness: fm.UnderlineThickness,
	}
	m.Lines[celldeco.Strikeout] = celldeco.LineMetric{
		Position:  fm.StrikeoutPosition,
		Thickness: fm.StrikeoutThickness,
	}
	return m
}
