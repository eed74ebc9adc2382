package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// countingParser returns a fixed font and counts Metrics calls.
type countingParser struct {
	font *countingFont
}

func (p countingParser) Parse(data []byte) (ParsedFont, error) {
	return p.font, nil
}

type countingFont struct {
	calls atomic.Int32
}

func (f *countingFont) Name() string                  { return "" }
func (f *countingFont) FullName() string              { return "Counting Mono" }
func (f *countingFont) UnitsPerEm() int               { return 1000 }
func (f *countingFont) Advance(rune, float64) float64 { return 7.6 }
func (f *countingFont) Metrics(ppem float64) FontMetrics {
	f.calls.Add(1)
	return FontMetrics{
		Ascent:             0.8 * ppem,
		Descent:            -0.2 * ppem,
		UnderlinePosition:  -0.1 * ppem,
		UnderlineThickness: 0.05 * ppem,
		StrikeoutPosition:  0.3 * ppem,
		StrikeoutThickness: 0.05 * ppem,
	}
}

func TestNewFontSource(t *testing.T) {
	for _, parser := range []string{"gotext", "ximage"} {
		t.Run(parser, func(t *testing.T) {
			source, err := NewFontSource(goregular.TTF, WithParser(parser))
			if err != nil {
				t.Fatalf("NewFontSource failed: %v", err)
			}
			defer func() {
				_ = source.Close()
			}()

			if source.Name() == "" {
				t.Error("expected non-empty font name")
			}
			if source.Parser() != parser {
				t.Errorf("Parser() = %q, want %q", source.Parser(), parser)
			}
		})
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opts []SourceOption
		want error
	}{
		{"empty data", nil, nil, ErrEmptyFontData},
		{"unknown parser", goregular.TTF, []SourceOption{WithParser("nope")}, ErrUnknownParser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontSource(tt.data, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewFontSource() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewFontSourceInvalidData(t *testing.T) {
	for _, parser := range []string{"gotext", "ximage"} {
		t.Run(parser, func(t *testing.T) {
			if _, err := NewFontSource([]byte("not a font"), WithParser(parser)); err == nil {
				t.Error("expected an error for garbage font data")
			}
		})
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	_ = source.Close()

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFontSourceMetricsCached(t *testing.T) {
	f := &countingFont{}
	RegisterParser("counting", countingParser{font: f})

	source, err := NewFontSource([]byte{0}, WithParser("counting"), WithCacheLimit(4))
	if err != nil {
		t.Fatal(err)
	}
	if got := source.Name(); got != "Counting Mono" {
		t.Errorf("Name() = %q, want full name fallback", got)
	}

	face := source.Face(20)
	for range 3 {
		if _, err := face.Metrics(); err != nil {
			t.Fatal(err)
		}
	}
	if n := f.calls.Load(); n != 1 {
		t.Errorf("Metrics computed %d times, want 1", n)
	}

	if _, err := source.Face(30).Metrics(); err != nil {
		t.Fatal(err)
	}
	if n := f.calls.Load(); n != 2 {
		t.Errorf("Metrics computed %d times after new size, want 2", n)
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(16)

	if err := source.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if _, err := face.Metrics(); !errors.Is(err, ErrClosed) {
		t.Errorf("Metrics() after Close error = %v, want ErrClosed", err)
	}
	if _, err := face.CellSize(0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("CellSize() after Close error = %v, want ErrClosed", err)
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = source.Close()
	}()

	copied := &FontSource{addr: source.addr}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	copied.Name()
}

func TestNilFontSourceFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil FontSource")
		}
	}()
	var s *FontSource
	s.Face(12)
}

func TestParsers(t *testing.T) {
	names := Parsers()
	want := map[string]bool{"gotext": false, "ximage": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("parser %q not registered", n)
		}
	}
}
