package watermark

// Default style values, matching the defaults photographers typically use
// for preview watermarks: a small, subtle, white-on-black-outlined text
// repeated at 45 degrees.
const (
	DefaultFontSize     = 24
	DefaultFillColor    = "#ffffff"
	DefaultOutlineColor = "#000000"
	DefaultOutlineWidth = 1
	DefaultAngle        = 45.0
	DefaultDensity      = 0.5
	DefaultOpacity      = 0.3
)

// Style describes a watermark request. It is a plain value passed into
// every operation, so multiple requests with different styles can run
// concurrently without shared state.
type Style struct {
	// Text is the watermark text, e.g. "© Jane Doe Photography".
	Text string

	// FontSize is the font size in points. Must be positive.
	FontSize int

	// FillColor is the text color as a hex string (e.g. "#ffffff").
	// A malformed value falls back to white with a logged warning.
	FillColor string

	// OutlineColor is the outline color as a hex string.
	// A malformed value falls back to black with a logged warning.
	OutlineColor string

	// OutlineWidth is the outline thickness in pixels. Zero disables the
	// outline pass entirely. Must not be negative.
	OutlineWidth int

	// Angle is the pattern rotation in degrees, counter-clockwise
	// positive. Any real value is accepted; sine and cosine normalize it.
	Angle float64

	// Density controls the spacing between repeated tiles, in (0, 1].
	// Higher values mean tighter spacing.
	Density float64

	// Opacity scales the pattern's alpha channel in [Apply], in [0, 1].
	// [Pattern] ignores it and always returns a full-opacity pattern.
	Opacity float64
}

// DefaultStyle returns a Style populated with the package defaults.
// The Text field is left empty and must be set by the caller.
func DefaultStyle() Style {
	return Style{
		FontSize:     DefaultFontSize,
		FillColor:    DefaultFillColor,
		OutlineColor: DefaultOutlineColor,
		OutlineWidth: DefaultOutlineWidth,
		Angle:        DefaultAngle,
		Density:      DefaultDensity,
		Opacity:      DefaultOpacity,
	}
}

// Validate checks the style parameters that would make rendering
// meaningless. Color strings are not validated here: malformed colors are
// recovered locally with fallback colors during rendering.
func (s Style) Validate() error {
	if s.FontSize <= 0 {
		return invalidParam("font size", "%d: must be positive", s.FontSize)
	}
	if s.OutlineWidth < 0 {
		return invalidParam("outline width", "%d: must not be negative", s.OutlineWidth)
	}
	if s.Density <= 0 || s.Density > 1 {
		return invalidParam("density", "%g: must be in (0, 1]", s.Density)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return invalidParam("opacity", "%g: must be in [0, 1]", s.Opacity)
	}
	return nil
}
