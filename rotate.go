package watermark

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// rotateTile rotates src counter-clockwise by angle degrees, expanding the
// bounds to the smallest axis-aligned rectangle that contains the rotated
// content. The corners fill with transparency. Resampling uses the
// Catmull-Rom kernel so rotated glyph edges stay smooth.
func rotateTile(src *image.NRGBA, angle float64) *image.NRGBA {
	theta := angle * math.Pi / 180
	sin, cos := math.Sincos(theta)

	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	rw := math.Ceil(sw*math.Abs(cos) + sh*math.Abs(sin))
	rh := math.Ceil(sw*math.Abs(sin) + sh*math.Abs(cos))

	dst := image.NewNRGBA(image.Rect(0, 0, int(rw), int(rh)))

	// Source-to-destination affine map: rotate about the source center,
	// then recenter in the expanded bounds. The sign on sin accounts for
	// the y-down raster coordinate system, keeping positive angles
	// counter-clockwise on screen.
	cx, cy := sw/2, sh/2
	m := f64.Aff3{
		cos, sin, rw/2 - cos*cx - sin*cy,
		-sin, cos, rh/2 + sin*cx - cos*cy,
	}
	xdraw.CatmullRom.Transform(dst, m, src, src.Bounds(), xdraw.Over, nil)

	return dst
}
