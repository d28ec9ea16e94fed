package watermark

import "image"

// ApplyOpacity returns a copy of img with every alpha value scaled by
// opacity. Opacity is clamped to [0, 1]: 0 yields a fully transparent
// image, 1 returns an unchanged copy. Color channels are not touched, so
// the operation is lossless for later compositing.
func ApplyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i])*opacity + 0.5)
	}
	return out
}
