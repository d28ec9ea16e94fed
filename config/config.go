// Package config loads watermark defaults from a YAML file.
//
// The configuration file is optional: it carries the same fields as the
// CLI flags so photographers can keep their house style (text, colors,
// angle, density) in one place and override per-run on the command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	watermark "github.com/HappyIssac/streamlit-watermark"
)

// Common errors
var (
	ErrConfigurationError = errors.New("configuration error")
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: ErrConfigurationError}
}

// Config holds the watermark defaults read from a YAML file.
type Config struct {
	// Text is the watermark text.
	Text string `yaml:"text"`

	// Font is a path to a TrueType/OpenType font file. Empty means
	// system font discovery.
	Font string `yaml:"font"`

	// FontSize is the font size in points.
	FontSize int `yaml:"font-size"`

	// FontColor is the text color as a hex string.
	FontColor string `yaml:"font-color"`

	// OutlineColor is the outline color as a hex string.
	OutlineColor string `yaml:"outline-color"`

	// OutlineWidth is the outline thickness in pixels.
	OutlineWidth int `yaml:"outline-width"`

	// Angle is the pattern rotation in degrees.
	Angle float64 `yaml:"angle"`

	// Density controls tile spacing, in (0, 1].
	Density float64 `yaml:"density"`

	// Opacity scales the pattern alpha, in [0, 1].
	Opacity float64 `yaml:"opacity"`
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	st := watermark.DefaultStyle()
	return &Config{
		FontSize:     st.FontSize,
		FontColor:    st.FillColor,
		OutlineColor: st.OutlineColor,
		OutlineWidth: st.OutlineWidth,
		Angle:        st.Angle,
		Density:      st.Density,
		Opacity:      st.Opacity,
	}
}

// Load reads a YAML configuration file on top of the defaults.
// Unknown fields are rejected so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	// #nosec G304 -- Config file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationError, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationError, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges. It mirrors watermark.Style.Validate so a
// bad config file fails at load time, before any image work starts.
func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return NewConfigError("font-size", "must be positive")
	}
	if c.OutlineWidth < 0 {
		return NewConfigError("outline-width", "must not be negative")
	}
	if c.Density <= 0 || c.Density > 1 {
		return NewConfigError("density", "must be in (0, 1]")
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return NewConfigError("opacity", "must be in [0, 1]")
	}
	return nil
}

// Style converts the configuration into a watermark.Style.
func (c *Config) Style() watermark.Style {
	return watermark.Style{
		Text:         c.Text,
		FontSize:     c.FontSize,
		FillColor:    c.FontColor,
		OutlineColor: c.OutlineColor,
		OutlineWidth: c.OutlineWidth,
		Angle:        c.Angle,
		Density:      c.Density,
		Opacity:      c.Opacity,
	}
}
