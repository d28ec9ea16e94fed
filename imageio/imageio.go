// Package imageio loads and saves the images the watermark tool works on.
//
// Decoding accepts PNG and JPEG (the formats the tool officially
// supports); everything is normalized to NRGBA so the watermark core only
// ever sees one pixel layout. Encoding picks the format from the output
// file extension, defaulting to PNG for anything unrecognized.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	watermark "github.com/HappyIssac/streamlit-watermark"
)

// ErrUnsupportedFormat is returned by Save for an extension that maps to
// no known encoder. Load reports decode failures from the underlying
// image registry instead, so it never returns this error.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// jpegQuality is the encode quality for JPEG output.
const jpegQuality = 95

// supportedExtensions are the output extensions that keep their format.
// Any other extension falls back to PNG in OutputPath.
var supportedExtensions = []string{".jpg", ".jpeg", ".png"}

// Load reads and decodes the image at path into NRGBA.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: unable to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(out, out.Bounds(), img, bounds.Min, xdraw.Src)

	watermark.Logger().Debug("decoded image",
		"path", path, "format", format,
		"width", bounds.Dx(), "height", bounds.Dy())
	return out, nil
}

// Save encodes img to path, choosing the encoder from the file extension:
// .jpg/.jpeg use JPEG, .png (and anything else after OutputPath
// normalization) uses PNG. Missing parent directories are created.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("imageio: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		// JPEG has no alpha channel; flatten onto white so partially
		// transparent pixels do not come out darkened.
		return jpeg.Encode(f, flatten(img), &jpeg.Options{Quality: jpegQuality})
	case ".png":
		return png.Encode(f, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// flatten composites img over an opaque white background.
func flatten(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(out, out.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), img, bounds.Min, xdraw.Over)
	return out
}

// OutputPath derives the output file path. An explicit output wins
// unchanged. Otherwise "_wm" is appended to the input name, keeping the
// input extension when it is a supported format and falling back to .png
// when it is not.
func OutputPath(input, output string) string {
	if output != "" {
		return output
	}

	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)

	outExt := ".png"
	for _, s := range supportedExtensions {
		if strings.EqualFold(ext, s) {
			outExt = ext
			break
		}
	}
	return base + "_wm" + outExt
}
