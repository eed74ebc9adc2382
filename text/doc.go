// Package text extracts the font metrics that place text decorations.
//
// The pipeline mirrors a usual text stack:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight view of a FontSource at one pixel size
//   - FontParser: pluggable parsing backend
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSansMono.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(16)
//	metrics, err := face.Metrics()
//	...
//	size, err := face.CellSize(2, 2)
//	...
//	r, err := celldeco.NewRenderer(metrics, size)
//
// # Parser backends
//
// Two parsers are registered:
//
//   - "gotext" (default) uses github.com/go-text/typesetting and reads the
//     underline and strikeout records of the post and OS/2 tables.
//   - "ximage" uses golang.org/x/image/font/sfnt. It reads the underline from
//     the post table; the strikeout is placed at half the x-height with the
//     underline thickness, since sfnt does not expose the OS/2 table.
//
// Custom parsers can be registered with RegisterParser.
package text
