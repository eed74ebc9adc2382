package celldeco

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a premultiplied RGBA pixel buffer that rectangles are painted on.
type Pixmap struct {
	img *image.RGBA
}

// Verify at compile time that Pixmap is an image.
var _ image.Image = (*Pixmap)(nil)

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Bounds().Dy()
}

// Clear fills the entire pixmap with a color, replacing its contents.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites one colored rectangle over the pixmap.
// The rectangle edges are rounded to whole pixels; rectangles that snap to
// nothing or fall outside the pixmap are ignored.
func (p *Pixmap) FillRect(cr ColoredRect) {
	r := cr.Pixels().Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(p.img, r, image.NewUniform(cr.Color), image.Point{}, draw.Over)
}

// FillRects composites rectangles in order.
func (p *Pixmap) FillRects(rects []ColoredRect) {
	for _, cr := range rects {
		p.FillRect(cr)
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Bounds())
	copy(img.Pix, p.img.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
