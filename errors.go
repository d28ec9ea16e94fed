package watermark

import (
	"errors"
	"fmt"
)

// Sentinel errors for the watermark package.
var (
	// ErrEmptyWatermark is returned when the watermark text is empty or
	// renders to a zero-area glyph block. A degenerate tile would produce
	// a degenerate pattern, so the request fails fast.
	ErrEmptyWatermark = errors.New("watermark: empty watermark text")
)

// InvalidParameterError reports a parameter outside its recognized range.
// Parameter validation runs before any rendering work begins, so no
// partial raster is ever produced alongside this error.
type InvalidParameterError struct {
	Param   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("watermark: invalid %s: %s", e.Param, e.Message)
}

// invalidParam is a shorthand constructor used by validation.
func invalidParam(param, format string, args ...any) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Message: fmt.Sprintf(format, args...)}
}
