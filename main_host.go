//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"roytracer/app"
	"roytracer/hal"
)

func main() {
	var cfg app.Config
	var headless bool
	var hz int
	var frames uint64
	var fov float64
	var timestep time.Duration
	var flip bool
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Width, "w", app.DefaultWidth, "Initial width in pixels.")
	flag.IntVar(&cfg.Height, "h", app.DefaultHeight, "Initial height in pixels.")
	flag.Float64Var(&fov, "fov", app.DefaultFOV, "Vertical field of view in degrees.")
	flag.IntVar(&cfg.Workers, "workers", 0, "Render goroutines (0 = one per CPU).")
	flag.IntVar(&cfg.LightSamples, "samples", 1, "Shadow samples per light.")
	flag.BoolVar(&cfg.SingleDiffuse, "single-diffuse", false, "Apply the diffuse colour once instead of twice.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show the stats overlay (toggle with H).")
	flag.Uint64Var(&cfg.LogEvery, "log-every", 0, "Log render times every N frames (0 = never).")
	flag.DurationVar(&timestep, "timestep", hal.DefaultTimestep, "Fixed update interval.")
	flag.BoolVar(&flip, "flip", true, "Show row 0 at the bottom of the window.")
	flag.Parse()

	cfg.FOV = float32(fov)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	tracer := app.New(cfg)

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, tracer, hal.HeadlessConfig{
			Width:    cfg.Width,
			Height:   cfg.Height,
			Hz:       hz,
			Frames:   frames,
			Timestep: timestep,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(tracer, hal.WindowConfig{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Timestep:     timestep,
		FlipVertical: flip,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
