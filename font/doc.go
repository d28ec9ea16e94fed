// Package font supplies glyph metrics and text drawing for the watermark
// renderer, plus filesystem discovery of a usable font.
//
// A [Source] wraps a parsed TTF/OTF file and creates [Face] values at
// specific sizes. Measurement uses HarfBuzz shaping via go-text/typesetting
// so kerning and ligatures are reflected in advance widths; drawing uses
// golang.org/x/image/font rasterization.
//
// [Discovery] implements the [Provider] capability: it tries an explicit
// font path, then well-known system font locations, and finally falls back
// to the embedded Go Regular face, so a watermark request never fails
// solely because a particular font file is missing.
package font
