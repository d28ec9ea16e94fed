package imageio

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		want   string
	}{
		{"explicit output wins", "photo.jpg", "out/final.png", "out/final.png"},
		{"jpg keeps extension", "photo.jpg", "", "photo_wm.jpg"},
		{"jpeg keeps extension", "photo.jpeg", "", "photo_wm.jpeg"},
		{"png keeps extension", "shot.png", "", "shot_wm.png"},
		{"uppercase extension kept", "photo.JPG", "", "photo_wm.JPG"},
		{"unsupported falls back to png", "scan.webp", "", "scan_wm.png"},
		{"no extension", "capture", "", "capture_wm.png"},
		{"path with directories", "in/2026/photo.png", "", "in/2026/photo_wm.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input, tt.output); got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q",
					tt.input, tt.output, got, tt.want)
			}
		})
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Run("png preserves pixels", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		src := testImage()
		if err := Save(src, path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Bounds() != src.Bounds() {
			t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
		}
		if got.NRGBAAt(3, 2) != src.NRGBAAt(3, 2) {
			t.Errorf("pixel (3,2) = %v, want %v", got.NRGBAAt(3, 2), src.NRGBAAt(3, 2))
		}
	})

	t.Run("jpeg is lossy but close", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jpg")
		src := testImage()
		if err := Save(src, path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Bounds() != src.Bounds() {
			t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
		}
	})

	t.Run("save creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "out.png")
		if err := Save(testImage(), path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("saved file missing: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := Save(testImage(), filepath.Join(t.TempDir(), "out.webp"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Save() error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
			t.Error("Load(missing) should fail")
		}
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.png")
		if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load(garbage) should fail")
		}
	})

	t.Run("bounds normalized to origin", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "off.png")
		sub := testImage().SubImage(image.Rect(2, 1, 7, 5))
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, sub); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}

		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		want := image.Rect(0, 0, 5, 4)
		if got.Bounds() != want {
			t.Errorf("bounds = %v, want %v", got.Bounds(), want)
		}
	})
}
