package font

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperState holds the lazily-initialized HarfBuzz shaping backend of a
// Source. The parsed go-text font.Font is read-only and safe for
// concurrent use; font.Face and HarfbuzzShaper are not, so a Face is
// created per call and the shaper is guarded by the mutex.
type shaperState struct {
	once sync.Once
	font *gtfont.Font
	err  error

	mu sync.Mutex
	hb shaping.HarfbuzzShaper
}

// shapedAdvance returns the total advance width of text at the given size
// in pixels, computed with HarfBuzz shaping. Unlike per-rune advance sums
// this reflects kerning pairs and ligature substitution.
func (s *Source) shapedAdvance(text string, size float64) (float64, error) {
	st := &s.shaper

	st.once.Do(func() {
		// Only the embedded *Font is retained; it is the read-only,
		// shareable part of the parse result.
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			st.err = err
			return
		}
		st.font = face.Font
	})
	if st.err != nil {
		return 0, st.err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(st.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	st.mu.Lock()
	out := st.hb.Shape(input)
	st.mu.Unlock()

	return fixedToFloat(out.Advance), nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script watermark
// text is rare enough that splitting runs by script is not worth it here.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
