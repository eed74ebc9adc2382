package celldeco

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func rgbaAt(p *Pixmap, x, y int) color.RGBA {
	return color.RGBAModel.Convert(p.At(x, y)).(color.RGBA)
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", pm.Width(), pm.Height())
	}
	pm.Clear(Red)
	for y := range 3 {
		for x := range 4 {
			if got := rgbaAt(pm, x, y); got != (color.RGBA{R: 255, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want opaque red", x, y, got)
			}
		}
	}
}

func TestPixmapFillRect(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	// Edges snap to (2,3)-(5,5).
	pm.FillRect(ColoredRect{Rect: Rect{X: 1.6, Y: 3, Width: 3.2, Height: 2}, Color: White})

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			got := rgbaAt(pm, x, y)
			if inside && got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				t.Errorf("pixel (%d,%d) = %v, want white", x, y, got)
			}
			if !inside && got != (color.RGBA{A: 255}) {
				t.Errorf("pixel (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

func TestPixmapFillRectBlendsAndClips(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)

	pm.FillRects([]ColoredRect{
		{Rect: Rect{X: -5, Y: -5, Width: 6, Height: 6}, Color: RGBA{R: 1, A: 0.5}},
		{Rect: Rect{X: 10, Y: 10, Width: 2, Height: 2}, Color: White},
		{Rect: Rect{X: 2, Y: 2, Width: 0, Height: 1}, Color: White},
	})

	got := rgbaAt(pm, 0, 0)
	if got.R < 126 || got.R > 129 || got.G != 0 || got.A != 255 {
		t.Errorf("blended pixel = %v, want half red over black", got)
	}
	if got := rgbaAt(pm, 2, 2); got != (color.RGBA{A: 255}) {
		t.Errorf("empty rect painted pixel (2,2): %v", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(Blue)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), pm.Bounds())
	}
	if r, g, b, a := img.At(1, 1).RGBA(); r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("pixel = (%d,%d,%d,%d), want opaque blue", r, g, b, a)
	}
}

func TestPixmapToImageIsCopy(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.ToImage()
	img.Pix[0] = 255
	if rgbaAt(pm, 0, 0).R != 0 {
		t.Error("ToImage must not share pixels with the pixmap")
	}
}
