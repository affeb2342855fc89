package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width    int
	Height   int
	Hz       int
	Frames   uint64
	Timestep time.Duration
	MaxSteps int
}

func (c HeadlessConfig) withDefaults() HeadlessConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}

// RunHeadless drives app without opening a window: one Render per tick at
// cfg.Hz, with fixed-step updates in between. It stops after cfg.Frames
// frames (0 = until ctx is done).
func RunHeadless(ctx context.Context, app App, cfg HeadlessConfig) error {
	cfg = cfg.withDefaults()

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Width, cfg.Height)
	if err := app.Init(h); err != nil {
		return err
	}
	defer app.Exit()

	st := newStepper(cfg.Timestep, cfg.MaxSteps, nil)
	t := time.NewTicker(d)
	defer t.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			st.advance(app, nil)
			if err := app.Render(); err != nil {
				return err
			}
			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return nil
			}
		}
	}
}
