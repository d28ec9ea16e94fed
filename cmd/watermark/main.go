// Command watermark applies a photography-style repeating text watermark
// to an image.
//
// Usage:
//
//	watermark -i photo.jpg -t "© Jane Doe Photography"
//	watermark -i photo.jpg -t "SAMPLE" -density 0.8 -opacity 0.25 -angle 45
//	watermark -i photo.jpg -t "SAMPLE" -config house-style.yaml -o out.png
//
// Without -o the output is written next to the input with a "_wm" suffix.
// A YAML config file (-config) supplies defaults for every style flag;
// flags given explicitly on the command line win over the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	watermark "github.com/HappyIssac/streamlit-watermark"
	"github.com/HappyIssac/streamlit-watermark/config"
	"github.com/HappyIssac/streamlit-watermark/font"
	"github.com/HappyIssac/streamlit-watermark/imageio"
)

func main() {
	defaults := config.Default()

	var (
		input      = flag.String("i", "", "path to the input image (required)")
		output     = flag.String("o", "", "path for the watermarked image (default: input with _wm suffix)")
		text       = flag.String("t", "", "watermark text, e.g. '© Your Name' (required)")
		configPath = flag.String("config", "", "YAML file with style defaults")
		fontPath   = flag.String("font", "", "path to a TrueType font file (default: system font)")
		fontSize   = flag.Int("font-size", defaults.FontSize, "font size in points")
		fontColor  = flag.String("font-color", defaults.FontColor, "text color in hex, e.g. #FFFFFF")
		outColor   = flag.String("outline-color", defaults.OutlineColor, "outline color in hex")
		outWidth   = flag.Int("outline-width", defaults.OutlineWidth, "outline width in pixels")
		angle      = flag.Float64("angle", defaults.Angle, "rotation angle in degrees")
		density    = flag.Float64("density", defaults.Density, "pattern density in (0, 1]; higher is tighter")
		opacity    = flag.Float64("opacity", defaults.Opacity, "watermark opacity in [0, 1]")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	watermark.SetLogger(logger)

	if *input == "" || *text == "" {
		fmt.Fprintln(os.Stderr, "watermark: -i and -t are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = *fontPath
		case "font-size":
			cfg.FontSize = *fontSize
		case "font-color":
			cfg.FontColor = *fontColor
		case "outline-color":
			cfg.OutlineColor = *outColor
		case "outline-width":
			cfg.OutlineWidth = *outWidth
		case "angle":
			cfg.Angle = *angle
		case "density":
			cfg.Density = *density
		case "opacity":
			cfg.Opacity = *opacity
		}
	})
	cfg.Text = *text

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *input, *output, logger); err != nil {
		logger.Error("watermarking failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, input, output string, logger *slog.Logger) error {
	base, err := imageio.Load(input)
	if err != nil {
		return err
	}

	src, err := font.Discovery{Path: cfg.Font, Logger: logger}.FindFont()
	if err != nil {
		return err
	}
	face, err := src.Face(float64(cfg.FontSize))
	if err != nil {
		return err
	}

	out, err := watermark.Apply(ctx, base, face, cfg.Style())
	if err != nil {
		return err
	}

	outPath := imageio.OutputPath(input, output)
	if err := imageio.Save(out, outPath); err != nil {
		return err
	}

	logger.Info("watermark applied", "input", input, "output", outPath, "font", src.Name())
	return nil
}
