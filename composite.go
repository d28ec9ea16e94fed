package watermark

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Composite alpha-composites overlay over base at the origin and returns
// the result. Neither input is modified. The output has base's dimensions;
// any overlay area outside them is discarded.
func Composite(base image.Image, overlay image.Image) *image.NRGBA {
	bounds := base.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(out, out.Bounds(), base, bounds.Min, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), overlay, overlay.Bounds().Min, xdraw.Over)
	return out
}
