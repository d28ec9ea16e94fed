package watermark

import (
	"image"
	"math"
)

// Spacing factor bounds. Density is inverted into a spacing factor, then
// clamped: the floor keeps near-maximum density from collapsing spacing
// toward zero (and the stamp count from exploding), the ceiling keeps
// near-zero density from producing an empty pattern. The exact floor value
// is a tunable inherited from the original tool.
const (
	minSpacingFactor = 0.2
	maxSpacingFactor = 1.0
)

// spacingScale sets the base gap between tiles relative to the larger
// tile dimension.
const spacingScale = 2.5

// lattice holds the placement grid for one pattern: a primary step vector
// along the tiling direction, a perpendicular step vector between rows,
// and loop bounds chosen to over-cover the canvas diagonal.
type lattice struct {
	spacing      int
	dx, dy       int // primary step, along the text's own rotation
	perpDX       int // perpendicular row step
	perpDY       int
	lineCount    int
	tilesPerLine int
}

// computeLattice derives the lattice for a canvas of the given size tiled
// with a (pre-rotation) tile of the given size at the given angle and
// density. Density must already be validated to (0, 1].
func computeLattice(canvasW, canvasH, tileW, tileH int, angle, density float64) lattice {
	diagonal := math.Hypot(float64(canvasW), float64(canvasH))

	// Higher density means smaller gaps, so the factor is the inverted
	// density, clamped to its working range.
	factor := 1.0 - density
	factor = math.Max(minSpacingFactor, math.Min(maxSpacingFactor, factor))

	larger := tileW
	if tileH > larger {
		larger = tileH
	}
	spacing := int(float64(larger) * spacingScale * factor)
	if spacing < 1 {
		spacing = 1
	}

	theta := angle * math.Pi / 180
	sin, cos := math.Sincos(theta)
	perpSin, perpCos := math.Sincos(theta + math.Pi/2)

	return lattice{
		spacing:      spacing,
		dx:           int(cos * float64(spacing)),
		dy:           int(sin * float64(spacing)),
		perpDX:       int(perpCos * float64(spacing)),
		perpDY:       int(perpSin * float64(spacing)),
		lineCount:    int(diagonal/float64(spacing)) * 2,
		tilesPerLine: int(diagonal*1.5/float64(spacing)) + 1,
	}
}

// positions returns every stamp position whose tile footprint could
// overlap the working canvas. Rows run along the perpendicular vector
// starting at (-rw, -rh); stamps within a row advance along the primary
// vector. The bounds check errs toward over-inclusion near the border:
// a wasted stamp is cheap, a skipped one would leave a gap.
func (l lattice) positions(rw, rh, workW, workH int) []image.Point {
	pts := make([]image.Point, 0, 2*l.lineCount*l.tilesPerLine)
	for i := -l.lineCount; i < l.lineCount; i++ {
		sx := -rw + i*l.perpDX
		sy := -rh + i*l.perpDY
		for j := 0; j < l.tilesPerLine; j++ {
			x := sx + j*l.dx
			y := sy + j*l.dy
			if x >= -rw && x <= workW && y >= -rh && y <= workH {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}
