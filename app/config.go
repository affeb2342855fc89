package app

import (
	"errors"
	"fmt"

	"roytracer/raytrace"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 1024
	DefaultFOV    = 80

	minFOV  = 10
	maxFOV  = 170
	fovStep = 5
)

// Config controls the tracer. Zero values take defaults, except HUD which
// is off unless set.
type Config struct {
	Width  int
	Height int
	// FOV is the vertical field of view in degrees.
	FOV float32

	Workers       int
	LightSamples  int
	SingleDiffuse bool

	HUD bool
	// LogEvery logs a frame-time summary every N frames (0 = never).
	LogEvery uint64
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	return c
}

// Validate reports the first unusable setting after defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Width > 0 && c.Height > raytrace.MaxPixels/c.Width {
		return fmt.Errorf("size %dx%d exceeds %d pixels", c.Width, c.Height, raytrace.MaxPixels)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("fov %v outside (0, 180)", c.FOV)
	}
	if c.LightSamples < 0 {
		return errors.New("light samples must not be negative")
	}
	return nil
}

func (c Config) options() raytrace.Options {
	return raytrace.Options{
		Workers:       c.Workers,
		LightSamples:  c.LightSamples,
		SingleDiffuse: c.SingleDiffuse,
	}
}
