package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessFrames(t *testing.T) {
	app := &recordApp{}
	cfg := HeadlessConfig{Width: 8, Height: 6, Hz: 1000, Frames: 3}
	if err := RunHeadless(context.Background(), app, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if app.inits != 1 || app.renders != 3 || app.exits != 1 {
		t.Fatalf("inits=%d renders=%d exits=%d, want 1, 3, 1", app.inits, app.renders, app.exits)
	}
	sf := app.p.Surface()
	if sf.Width() != 8 || sf.Height() != 6 {
		t.Fatalf("surface = %dx%d, want 8x6", sf.Width(), sf.Height())
	}
	if app.p.Logger() == nil {
		t.Fatal("Logger() = nil")
	}
}

func TestRunHeadlessInitError(t *testing.T) {
	boom := errors.New("boom")
	app := &recordApp{initErr: boom}
	err := RunHeadless(context.Background(), app, HeadlessConfig{Hz: 1000, Frames: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
	if app.renders != 0 || app.exits != 0 {
		t.Fatalf("renders=%d exits=%d after failed Init, want 0, 0", app.renders, app.exits)
	}
}

func TestRunHeadlessRenderError(t *testing.T) {
	boom := errors.New("render failed")
	app := &recordApp{renderErr: boom}
	err := RunHeadless(context.Background(), app, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
	if app.renders != 1 || app.exits != 1 {
		t.Fatalf("renders=%d exits=%d, want 1, 1", app.renders, app.exits)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	app := &recordApp{}
	err := RunHeadless(ctx, app, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() = %v, want %v", err, context.DeadlineExceeded)
	}
	if app.exits != 1 {
		t.Fatalf("exits = %d, want 1", app.exits)
	}
}
