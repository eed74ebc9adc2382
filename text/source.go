package text

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/gogpu/celldeco"
	"github.com/gogpu/celldeco/internal/cache"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	parsed ParsedFont
	name   string

	// metrics memoizes FontMetrics per size, keyed by the float bits.
	metrics *cache.Cache[uint64, FontMetrics]

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is not retained after parsing.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed:  parsed,
		metrics: cache.New[uint64, FontMetrics](config.cacheLimit),
		config:  config,
	}
	s.addr = s
	s.name = extractFontName(parsed)

	celldeco.Logger().Info("text: font loaded",
		"name", s.name,
		"parser", config.parserName,
		"upem", parsed.UnitsPerEm(),
	)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Face{source: s, size: size, config: config}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the parser backend that loaded the font.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// Parsed returns the parsed font, or nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// fontMetrics returns the cached metrics at size.
func (s *FontSource) fontMetrics(size float64) (FontMetrics, error) {
	parsed := s.Parsed()
	if parsed == nil {
		return FontMetrics{}, ErrClosed
	}
	return s.metrics.GetOrCreate(math.Float64bits(size), func() FontMetrics {
		return parsed.Metrics(size)
	}), nil
}

// advance returns the advance of r at size.
func (s *FontSource) advance(r rune, size float64) (float64, error) {
	parsed := s.Parsed()
	if parsed == nil {
		return 0, ErrClosed
	}
	return parsed.Advance(r, size), nil
}

// Close releases the parsed font. Faces created from this source return
// ErrClosed afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parsed = nil
	s.metrics.Clear()
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
