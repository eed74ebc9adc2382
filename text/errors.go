package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a FontSource asks for a parser name
	// that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("text: font source closed")
)
