package font

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font-wide vertical metrics at a face's size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line
	// (positive, below the baseline).
	Descent float64

	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// Face represents a font at a specific size, ready for measurement and
// drawing. Create faces with [Source.Face].
//
// A Face holds mutable rasterization state and is NOT safe for concurrent
// use. Create one Face per goroutine from the shared Source.
type Face struct {
	source *Source
	size   float64
	raster xfont.Face
}

// Face creates a Face at the specified size (in points, at 72 DPI, so
// points equal pixels). Multiple faces can be created from one Source.
func (s *Source) Face(size float64) (*Face, error) {
	raster, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}

	return &Face{
		source: s,
		size:   size,
		raster: raster,
	}, nil
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source {
	return f.source
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	m := f.raster.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Bounds returns the tight ink bounding box of the text relative to a
// baseline origin at (0, 0), together with the rasterizer's advance width.
// The rectangle is rounded outward to whole pixels. An empty or
// whitespace-only string yields an empty rectangle.
func (f *Face) Bounds(text string) (image.Rectangle, float64) {
	b, adv := xfont.BoundString(f.raster, text)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	return r, fixedToFloat(adv)
}

// Advance returns the total advance width of the text in pixels.
// The width comes from HarfBuzz shaping, so kerning pairs and ligatures
// are accounted for. If shaping fails the rasterizer's advance is used.
func (f *Face) Advance(text string) float64 {
	if adv, err := f.source.shapedAdvance(text, f.size); err == nil {
		return adv
	}
	_, adv := xfont.BoundString(f.raster, text)
	return fixedToFloat(adv)
}

// Draw renders text to dst with (x, y) as the baseline origin.
func (f *Face) Draw(dst draw.Image, text string, x, y float64, col color.Color) {
	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.raster,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(text)
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
