//go:build !cgo

package hal

import (
	"errors"
	"time"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	Timestep     time.Duration
	MaxSteps     int
	TPS          int
	FlipVertical bool
}

func RunWindow(_ App, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
