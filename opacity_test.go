package watermark

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestApplyOpacity(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: uint8(60 * (y + 1))})
		}
	}

	t.Run("zero clears alpha", func(t *testing.T) {
		got := ApplyOpacity(src, 0)
		for i := 3; i < len(got.Pix); i += 4 {
			if got.Pix[i] != 0 {
				t.Fatalf("alpha byte %d = %d, want 0", i, got.Pix[i])
			}
		}
	})

	t.Run("one is identity", func(t *testing.T) {
		got := ApplyOpacity(src, 1)
		if !bytes.Equal(got.Pix, src.Pix) {
			t.Error("opacity 1 changed pixel data")
		}
	})

	t.Run("half scales alpha only", func(t *testing.T) {
		got := ApplyOpacity(src, 0.5)
		c := got.NRGBAAt(0, 0)
		if c.R != 200 || c.G != 100 || c.B != 50 {
			t.Errorf("color channels changed: %v", c)
		}
		if c.A != 30 {
			t.Errorf("alpha = %d, want 30", c.A)
		}
	})

	t.Run("out of range clamps", func(t *testing.T) {
		if got := ApplyOpacity(src, 2); !bytes.Equal(got.Pix, src.Pix) {
			t.Error("opacity 2 should clamp to identity")
		}
		got := ApplyOpacity(src, -1)
		for i := 3; i < len(got.Pix); i += 4 {
			if got.Pix[i] != 0 {
				t.Fatalf("negative opacity should clamp to transparent")
			}
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		before := make([]byte, len(src.Pix))
		copy(before, src.Pix)
		_ = ApplyOpacity(src, 0.3)
		if !bytes.Equal(src.Pix, before) {
			t.Error("ApplyOpacity modified its input")
		}
	})
}

func TestComposite(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	base.SetNRGBA(0, 0, color.NRGBA{0, 0, 255, 255})
	base.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})

	overlay := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	overlay.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255}) // opaque: replaces
	overlay.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 0})   // transparent: keeps base

	got := Composite(base, overlay)

	if c := got.NRGBAAt(0, 0); c.R != 255 || c.B != 0 {
		t.Errorf("opaque overlay pixel = %v, want red", c)
	}
	if c := got.NRGBAAt(1, 0); c.B != 255 || c.R != 0 {
		t.Errorf("transparent overlay pixel = %v, want base blue", c)
	}
}
