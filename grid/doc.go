// Package grid is a minimal terminal cell grid that produces the ordered
// cell stream consumed by celldeco.Tracker.
//
// Text is written with tcell styles; decorations come from the style's
// underline and strikethrough attributes and colors are resolved through a
// Palette. Wide characters occupy two columns: the second one is a spacer
// cell that carries the same style, so decorations run under the whole
// glyph.
package grid
