package watermark

import "image/color"

// ParseHexColor parses a hex color string into an opaque-capable NRGBA.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. The second return value reports whether the input
// was well formed; on failure the zero color is returned.
func ParseHexColor(s string) (color.NRGBA, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(s) {
	case 3: // RGB
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return color.NRGBA{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) || !parseHex(s[3:4], &a) {
			return color.NRGBA{}, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return color.NRGBA{}, false
		}
	case 8: // RRGGBBAA
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) || !parseHex(s[6:8], &a) {
			return color.NRGBA{}, false
		}
	default:
		return color.NRGBA{}, false
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

// parseHex parses a hex digit group into val.
// Returns false on any non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Fallback colors used when a style carries a malformed color string.
// A malformed color is a cosmetic input error and never aborts the
// operation; the renderer substitutes these and logs a warning.
var (
	fallbackFill    = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // white
	fallbackOutline = color.NRGBA{R: 0, G: 0, B: 0, A: 255}      // black
)
