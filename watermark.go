package watermark

import (
	"context"
	"image"

	"github.com/HappyIssac/streamlit-watermark/font"
)

// Apply watermarks base with the repeating diagonal text pattern described
// by st: it generates the pattern sized to base, scales it to st.Opacity,
// and composites it over a copy of base. The input image is not modified.
//
// Errors follow the same taxonomy as [Pattern]: empty text yields
// [ErrEmptyWatermark] and out-of-range parameters an
// [*InvalidParameterError], both before any raster is produced.
func Apply(ctx context.Context, base image.Image, face *font.Face, st Style) (*image.NRGBA, error) {
	b := base.Bounds()

	pattern, err := Pattern(ctx, b.Dx(), b.Dy(), face, st)
	if err != nil {
		return nil, err
	}
	pattern = ApplyOpacity(pattern, st.Opacity)

	return Composite(base, pattern), nil
}
