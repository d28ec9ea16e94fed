// Package watermark generates photography-style repeating text watermarks.
//
// # Overview
//
// The package renders a single glyph block (the watermark text plus an
// optional outline) into a tightly-fitted transparent raster, rotates it,
// and stamps it across a diagonal lattice so that the resulting pattern
// fully covers the target canvas with no gaps after cropping. The pattern
// is produced at full opacity; opacity scaling and compositing over a base
// image are separate steps so a pattern can be reused.
//
// # Quick Start
//
//	import (
//	    "github.com/HappyIssac/streamlit-watermark"
//	    "github.com/HappyIssac/streamlit-watermark/font"
//	)
//
//	src, err := font.Discovery{}.FindFont()
//	if err != nil {
//	    return err
//	}
//	face, err := src.Face(24)
//	if err != nil {
//	    return err
//	}
//	st := watermark.DefaultStyle()
//	st.Text = "© Jane Doe Photography"
//	out, err := watermark.Apply(ctx, base, face, st)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin at top-left, X
// increases right, Y increases down. Rotation angles are in degrees,
// counter-clockwise positive (mathematical convention).
//
// # Logging
//
// The package produces no log output by default. Call [SetLogger] to
// enable structured logging.
package watermark

// Version is the current version of the library.
const Version = "1.0.0"
