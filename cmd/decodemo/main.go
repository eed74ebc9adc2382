// Command decodemo renders the decoration rectangles of a sample terminal
// grid into a PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/celldeco"
	"github.com/gogpu/celldeco/grid"
	"github.com/gogpu/celldeco/text"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Mono)")
		size     = flag.Float64("size", 16, "font size in pixels per em")
		parser   = flag.String("parser", "gotext", "font parser backend (gotext, ximage)")
		pad      = flag.Float64("pad", 4, "padding around the grid in pixels")
		fg       = flag.String("fg", "#d0d0d0", "default foreground color")
		bg       = flag.String("bg", "#1c1c1c", "background color")
		cursor   = flag.String("cursor", "#f0c000", "cursor color")
		output   = flag.String("output", "decodemo.png", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		celldeco.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	palette := grid.DefaultPalette()
	palette.Foreground = mustColor(*fg)
	palette.Background = mustColor(*bg)
	cursorColor := mustColor(*cursor)

	source, err := loadFont(*fontPath, *parser)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	face := source.Face(*size)
	metrics, err := face.Metrics()
	if err != nil {
		log.Fatalf("Failed to read metrics: %v", err)
	}
	cellSize, err := face.CellSize(*pad, *pad)
	if err != nil {
		log.Fatalf("Failed to compute cell size: %v", err)
	}

	r, err := celldeco.NewRenderer(metrics, cellSize, celldeco.WithCapacity(32))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g := buildGrid()
	cols, rows := g.Size()

	var extra []celldeco.ColoredRect
	for _, rect := range celldeco.SelectionRects(
		celldeco.Point{Line: 5, Column: 4},
		celldeco.Point{Line: 6, Column: 9},
		cols, cellSize,
	) {
		extra = append(extra, celldeco.ColoredRect{Rect: rect, Color: celldeco.RGBA{R: 0.3, G: 0.5, B: 1, A: 0.35}})
	}
	for _, rect := range celldeco.CursorRects(7, 2, celldeco.CursorBlock, cellSize, 1) {
		extra = append(extra, celldeco.ColoredRect{Rect: rect, Color: cursorColor})
	}

	rects := r.Render(g.Cells(palette), extra...)

	w := int(float64(cols)*cellSize.CellWidth + 2*(*pad))
	h := int(float64(rows)*cellSize.CellHeight + 2*(*pad))
	pm := celldeco.NewPixmap(w, h)
	pm.Clear(palette.Background)
	pm.FillRects(rects)

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %d rectangles to %s (%dx%d)\n", len(rects), *output, w, h)
}

func loadFont(path, parser string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(gomono.TTF, text.WithParser(parser))
	}
	return text.NewFontSourceFromFile(path, text.WithParser(parser))
}

func mustColor(s string) celldeco.RGBA {
	c, err := celldeco.ParseColor(s)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}
	return c
}

// buildGrid writes sample lines that exercise run merging: long runs, color
// changes inside a run, gaps, line changes and wide characters.
func buildGrid() *grid.Grid {
	const cols, rows = 40, 8

	var (
		plain     = tcell.StyleDefault
		underline = plain.Attributes(tcell.AttrUnderline)
		strike    = plain.Attributes(tcell.AttrStrikeThrough)
		both      = plain.Attributes(tcell.AttrUnderline | tcell.AttrStrikeThrough)
	)

	g := grid.New(cols, rows)
	g.SetString(0, 0, "underlined text, one run", underline)

	col := g.SetString(1, 0, "red ", underline.Foreground(tcell.ColorRed))
	col = g.SetString(1, col, "green ", underline.Foreground(tcell.ColorGreen))
	g.SetString(1, col, "blue", underline.Foreground(tcell.ColorBlue))

	g.SetString(2, 0, "gap", underline)
	g.SetString(2, 5, "split", underline)

	g.SetString(3, 0, "struck out", strike)
	g.SetString(3, 11, "both at once", both)

	col = g.SetString(4, 0, "wide: ", plain)
	g.SetString(4, col, "日本語テキスト", underline)

	g.SetString(5, 0, "selection spans", plain)
	g.SetString(6, 0, "two lines here", strike.Foreground(tcell.ColorYellow))
	g.SetString(7, 0, "> ", plain)
	return g
}
