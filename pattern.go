package watermark

import (
	"context"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/HappyIssac/streamlit-watermark/font"
)

// cancelCheckInterval is the number of stamps between context checks in
// the coverage loop, the only unbounded-feeling operation in the package.
const cancelCheckInterval = 64

// Pattern generates the full-canvas repeating diagonal pattern for a
// canvas of the given size. The result has exactly the requested
// dimensions, full (unscaled) opacity, and is fully covered by the
// rotated, tiled glyph block; opacity scaling is the caller's concern
// (see [ApplyOpacity] and [Apply]).
//
// Pattern is a deterministic pure computation: identical inputs produce
// byte-identical rasters. The context is checked cooperatively inside the
// stamping loop, so a cancelled ctx aborts a large pattern promptly.
func Pattern(ctx context.Context, width, height int, face *font.Face, st Style) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidParam("canvas size", "%dx%d: must be positive", width, height)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	tile, err := renderTile(face, st)
	if err != nil {
		return nil, err
	}
	tileW := tile.Bounds().Dx()
	tileH := tile.Bounds().Dy()

	rotated := rotateTile(tile, st.Angle)
	rw := rotated.Bounds().Dx()
	rh := rotated.Bounds().Dy()

	// Oversized working canvas: the crop below always has valid source
	// pixels regardless of rotation growth or lattice phase.
	workW := width + 2*tileW
	workH := height + 2*tileH
	working := image.NewNRGBA(image.Rect(0, 0, workW, workH))

	lat := computeLattice(width, height, tileW, tileH, st.Angle, st.Density)
	stamps := lat.positions(rw, rh, workW, workH)

	Logger().Debug("stamping pattern",
		"canvas", image.Point{X: width, Y: height},
		"tile", image.Point{X: tileW, Y: tileH},
		"rotated", image.Point{X: rw, Y: rh},
		"spacing", lat.spacing,
		"stamps", len(stamps))

	for n, p := range stamps {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		r := image.Rect(p.X, p.Y, p.X+rw, p.Y+rh)
		xdraw.Draw(working, r, rotated, image.Point{}, xdraw.Over)
	}

	// Center-crop to the requested size.
	left := (workW - width) / 2
	top := (workH - height) / 2
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(out, out.Bounds(), working, image.Point{X: left, Y: top}, xdraw.Src)

	return out, nil
}
