package watermark

import (
	"image"
	"math"

	"github.com/HappyIssac/streamlit-watermark/font"
)

// renderTile renders one glyph block: the watermark text with its outline,
// tightly fitted into a transparent raster. The raster carries a padding
// of 2×outline width on every side so that outline strokes drawn at any
// offset in [-w, w]² stay within bounds.
func renderTile(face *font.Face, st Style) (*image.NRGBA, error) {
	if st.Text == "" {
		return nil, ErrEmptyWatermark
	}

	fill, ok := ParseHexColor(st.FillColor)
	if !ok {
		Logger().Warn("invalid fill color, using white", "color", st.FillColor)
		fill = fallbackFill
	}
	outline, ok := ParseHexColor(st.OutlineColor)
	if !ok {
		Logger().Warn("invalid outline color, using black", "color", st.OutlineColor)
		outline = fallbackOutline
	}

	// The ink box bounds what the rasterizer will actually paint; the
	// shaped advance can exceed it (trailing spaces, hinting drift), so
	// the tile width covers both.
	ink, _ := face.Bounds(st.Text)
	textW := ink.Dx()
	if adv := int(math.Ceil(face.Advance(st.Text))); adv > textW {
		textW = adv
	}
	textH := ink.Dy()
	if textW <= 0 || textH <= 0 {
		return nil, ErrEmptyWatermark
	}

	pad := 2 * st.OutlineWidth
	tile := image.NewNRGBA(image.Rect(0, 0, textW+2*pad, textH+2*pad))

	// Baseline origin placing the ink box at (pad, pad).
	originX := float64(pad - ink.Min.X)
	originY := float64(pad - ink.Min.Y)

	// Outline by repeated offset redraw: the glyph mask shifted to every
	// offset in the square around the origin, excluding the origin itself.
	// O(w²) text draws, acceptable because outline widths stay small.
	w := st.OutlineWidth
	if w > 0 {
		for dx := -w; dx <= w; dx++ {
			for dy := -w; dy <= w; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				face.Draw(tile, st.Text, originX+float64(dx), originY+float64(dy), outline)
			}
		}
	}

	face.Draw(tile, st.Text, originX, originY, fill)

	return tile, nil
}
