package font

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
)

// Provider locates a usable font source. The watermark renderer never
// hard-fails solely because a particular font is unavailable, so a
// Provider is expected to fall back to substitutes before giving up.
type Provider interface {
	FindFont() (*Source, error)
}

// directories probed for system fonts, in order.
var fontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/TTF",
	"/System/Library/Fonts",
	"/Library/Fonts",
	`C:\Windows\Fonts`,
}

// file names probed inside each directory.
var fontNames = []string{
	"Arial.ttf", "arial.ttf",
	"Verdana.ttf", "verdana.ttf",
	"Tahoma.ttf", "tahoma.ttf",
	"DejaVuSans.ttf", "DejaVuSans-Bold.ttf",
	"Helvetica.ttf", "helvetica.ttf",
}

// defaultCandidates returns the flat probe list of font file paths.
func defaultCandidates() []string {
	candidates := make([]string, 0, len(fontDirs)*len(fontNames))
	for _, dir := range fontDirs {
		for _, name := range fontNames {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return candidates
}

// Discovery finds a font by probing, in order: an explicit file path, a
// list of well-known system font locations, and finally the embedded Go
// Regular face. The zero value is ready to use and always succeeds on the
// embedded fallback.
//
// Discovery implements [Provider].
type Discovery struct {
	// Path is an explicit font file (TTF or OTF) tried first when
	// non-empty. If it cannot be loaded, discovery logs a warning and
	// continues with the fallback chain instead of failing.
	Path string

	// Candidates overrides the built-in system probe list.
	// Leave nil for the default list.
	Candidates []string

	// Logger receives discovery diagnostics. Nil means silent.
	Logger *slog.Logger
}

// FindFont implements [Provider].
func (d Discovery) FindFont() (*Source, error) {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if d.Path != "" {
		src, err := NewSourceFromFile(d.Path)
		if err == nil {
			log.Debug("loaded font", "path", d.Path, "family", src.Name())
			return src, nil
		}
		log.Warn("could not load font, falling back to system fonts",
			"path", d.Path, "error", err)
	}

	candidates := d.Candidates
	if candidates == nil {
		candidates = defaultCandidates()
	}
	for _, path := range candidates {
		src, err := NewSourceFromFile(path)
		if err != nil {
			continue
		}
		log.Debug("using system font", "path", path, "family", src.Name())
		return src, nil
	}

	src, err := NewSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded fallback failed: %v", ErrNoFont, err)
	}
	log.Debug("using embedded fallback font", "family", src.Name())
	return src, nil
}
