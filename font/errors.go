package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoFont is returned when no usable font could be found anywhere,
	// including the embedded fallback. This is fatal: no glyph block can
	// be rendered without a font.
	ErrNoFont = errors.New("font: no usable font found")
)
