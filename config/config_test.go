package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watermark.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
	if cfg.FontSize != 24 {
		t.Errorf("FontSize = %d, want 24", cfg.FontSize)
	}
	if cfg.Density != 0.5 {
		t.Errorf("Density = %v, want 0.5", cfg.Density)
	}
}

func TestLoad(t *testing.T) {
	t.Run("overrides on top of defaults", func(t *testing.T) {
		path := writeConfig(t, `
text: "© Studio 2026"
font-size: 36
density: 0.8
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Text != "© Studio 2026" {
			t.Errorf("Text = %q", cfg.Text)
		}
		if cfg.FontSize != 36 {
			t.Errorf("FontSize = %d, want 36", cfg.FontSize)
		}
		if cfg.Density != 0.8 {
			t.Errorf("Density = %v, want 0.8", cfg.Density)
		}
		// Untouched fields keep their defaults.
		if cfg.Opacity != 0.3 {
			t.Errorf("Opacity = %v, want default 0.3", cfg.Opacity)
		}
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.FontColor != "#ffffff" {
			t.Errorf("FontColor = %q, want default", cfg.FontColor)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "fnt-size: 36\n"))
		if !errors.Is(err, ErrConfigurationError) {
			t.Errorf("Load() error = %v, want ErrConfigurationError", err)
		}
	})

	t.Run("out of range value rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "density: 1.5\n"))
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("Load() error = %v, want *ConfigError", err)
		}
		if cerr.Field != "density" {
			t.Errorf("Field = %q, want %q", cerr.Field, "density")
		}
		if !errors.Is(err, ErrConfigurationError) {
			t.Error("ConfigError should unwrap to ErrConfigurationError")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigurationError) {
			t.Errorf("Load() error = %v, want ErrConfigurationError", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "text: [unclosed\n"))
		if !errors.Is(err, ErrConfigurationError) {
			t.Errorf("Load() error = %v, want ErrConfigurationError", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"zero font size", func(c *Config) { c.FontSize = 0 }, "font-size"},
		{"negative outline", func(c *Config) { c.OutlineWidth = -1 }, "outline-width"},
		{"zero density", func(c *Config) { c.Density = 0 }, "density"},
		{"density above one", func(c *Config) { c.Density = 1.01 }, "density"},
		{"negative opacity", func(c *Config) { c.Opacity = -0.1 }, "opacity"},
		{"opacity above one", func(c *Config) { c.Opacity = 1.1 }, "opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.wantField)
			}
		})
	}
}

func TestStyle(t *testing.T) {
	cfg := Default()
	cfg.Text = "DRAFT"
	cfg.Angle = 30
	st := cfg.Style()
	if st.Text != "DRAFT" || st.Angle != 30 {
		t.Errorf("Style() = %+v, conversion lost fields", st)
	}
	if st.FillColor != cfg.FontColor {
		t.Errorf("FillColor = %q, want %q", st.FillColor, cfg.FontColor)
	}
	if err := st.Validate(); err != nil {
		t.Errorf("converted style does not validate: %v", err)
	}
}
