//go:build !tinygo

// Command rtshot renders one frame of the reference scene to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"roytracer/internal/buildinfo"
	"roytracer/internal/hostinfo"
	"roytracer/raytrace"
	"roytracer/scene"
)

type shotConfig struct {
	width, height int
	t             float64
	fov           float64
	opts          raytrace.Options
	out           string
}

func main() {
	var cfg shotConfig
	flag.IntVar(&cfg.width, "w", 1024, "Image width in pixels.")
	flag.IntVar(&cfg.height, "h", 1024, "Image height in pixels.")
	flag.Float64Var(&cfg.t, "t", 0, "Scene time in seconds (moves the light).")
	flag.Float64Var(&cfg.fov, "fov", 80, "Vertical field of view in degrees.")
	flag.IntVar(&cfg.opts.Workers, "workers", 0, "Render goroutines (0 = one per CPU).")
	flag.IntVar(&cfg.opts.LightSamples, "samples", 1, "Shadow samples per light.")
	flag.BoolVar(&cfg.opts.SingleDiffuse, "single-diffuse", false, "Apply the diffuse colour once instead of twice.")
	flag.StringVar(&cfg.out, "o", "frame.png", "Output PNG path.")
	flag.Parse()

	if cfg.out == "" {
		fmt.Fprintln(os.Stderr, "error: -o is required")
		os.Exit(2)
	}
	if !(cfg.fov > 0 && cfg.fov < 180) {
		fmt.Fprintln(os.Stderr, "error: -fov must be in (0, 180)")
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg shotConfig, log io.Writer) error {
	img, elapsed, err := render(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("create %q: %w", cfg.out, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", cfg.out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", cfg.out, err)
	}

	fmt.Fprintf(log, "%s\n", buildinfo.String())
	fmt.Fprintf(log, "host %s\n", hostinfo.Describe())
	fmt.Fprintf(log, "wrote %s (%dx%d) in %v\n", cfg.out, cfg.width, cfg.height, elapsed.Round(time.Microsecond))
	return nil
}

// render traces a single frame and wraps it as an image sharing the RGBA
// bytes.
func render(cfg shotConfig) (*image.RGBA, time.Duration, error) {
	k, err := raytrace.Init(scene.Reference(), cfg.width, cfg.height, cfg.opts)
	if err != nil {
		return nil, 0, err
	}
	defer k.Destroy()

	start := time.Now()
	if err := k.Render(cfg.width, cfg.height, float32(cfg.t), float32(cfg.fov)); err != nil {
		return nil, 0, err
	}
	elapsed := time.Since(start)

	f := k.Frame()
	return &image.RGBA{
		Pix:    f.RGBA(nil),
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, elapsed, nil
}
