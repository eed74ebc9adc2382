package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 32,                // face sizes kept per source
		parserName: defaultParserName, // gotext
	}
}

// WithCacheLimit sets how many face sizes keep their metrics cached.
// Non-positive values select the cache default.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend by registered name.
// The default is "gotext".
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	cellRune    rune
	lineSpacing float64
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		cellRune:    'M',
		lineSpacing: 0,
	}
}

// WithCellRune sets the rune whose advance defines the cell width.
func WithCellRune(r rune) FaceOption {
	return func(c *faceConfig) {
		c.cellRune = r
	}
}

// WithLineSpacing adds extra pixels to the cell height.
func WithLineSpacing(px float64) FaceOption {
	return func(c *faceConfig) {
		c.lineSpacing = px
	}
}
