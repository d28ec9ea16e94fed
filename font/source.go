package font

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file.
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
type Source struct {
	// Raw font data, retained for the shaping backend.
	data []byte

	// Parsed sfnt font used for rasterization and metadata.
	parsed *opentype.Font

	// Font family name, extracted at load time.
	name string

	// Lazily-initialized HarfBuzz shaping state.
	shaper shaperState
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
	}
	s.name = extractName(parsed)

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}

	return NewSource(data)
}

// Name returns the font family name, or "Unknown Font" if the font
// carries no usable name records.
func (s *Source) Name() string {
	return s.name
}

// extractName extracts the font family name from the parsed font.
func extractName(parsed *opentype.Font) string {
	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := parsed.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
