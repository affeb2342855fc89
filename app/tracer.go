// Package app is the interactive ray tracer: it owns the kernel, reacts to
// window and keyboard events and publishes each frame to the host surface.
package app

import (
	"errors"
	"fmt"
	"time"

	"roytracer/hal"
	"roytracer/internal/buildinfo"
	"roytracer/internal/hostinfo"
	"roytracer/raytrace"
	"roytracer/scene"
)

// Tracer implements hal.App.
type Tracer struct {
	cfg   Config
	scene *scene.Scene
	now   func() time.Time

	log hal.Logger
	sf  hal.Surface
	k   *raytrace.Kernel

	t, dt  float32
	frozen float32 // simulated seconds spent paused
	paused bool
	fov    float32
	hud    bool

	// err is set by OnEvent and returned from the next Render.
	err error

	frames    uint64
	stats     frameStats
	lastFrame time.Time
	fps       float64
}

// New returns a tracer over the reference scene.
func New(cfg Config) *Tracer {
	return NewWithScene(cfg, scene.Reference())
}

func NewWithScene(cfg Config, sc *scene.Scene) *Tracer {
	cfg = cfg.withDefaults()
	return &Tracer{
		cfg:   cfg,
		scene: sc,
		now:   time.Now,
		fov:   cfg.FOV,
		hud:   cfg.HUD,
	}
}

func (tr *Tracer) Init(p hal.Platform) error {
	if err := tr.cfg.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	tr.log = p.Logger()
	tr.sf = p.Surface()

	w, h := tr.sf.Width(), tr.sf.Height()
	k, err := raytrace.Init(tr.scene, w, h, tr.cfg.options())
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	tr.k = k

	tr.logf("app: %s", buildinfo.String())
	tr.logf("app: host %s", hostinfo.Describe())
	tr.logf("app: %dx%d fov=%.0f workers=%d samples=%d", w, h, tr.fov, k.Workers(), max(tr.cfg.LightSamples, 1))
	return nil
}

func (tr *Tracer) OnEvent(e hal.Event) {
	switch e.Kind {
	case hal.EventWindowResize:
		tr.resize(e.X, e.Y)
	case hal.EventKeyPress:
		switch {
		case e.Key == hal.KeyUp:
			tr.setFOV(tr.fov + fovStep)
		case e.Key == hal.KeyDown:
			tr.setFOV(tr.fov - fovStep)
		case e.Key == hal.KeySpace:
			tr.paused = !tr.paused
		case e.Rune == 'h' || e.Rune == 'H':
			tr.hud = !tr.hud
		}
	}
}

func (tr *Tracer) resize(w, h int) {
	if w <= 0 || h <= 0 {
		// Minimized windows report 0x0; keep the last frame.
		return
	}
	if err := tr.k.Resize(w, h); err != nil {
		tr.err = fmt.Errorf("app: resize: %w", err)
		tr.logf("%v", tr.err)
		return
	}
	tr.sf.Resize(w, h)
}

func (tr *Tracer) setFOV(fov float32) {
	tr.fov = min(max(fov, minFOV), maxFOV)
}

// Update records the simulation clock. While paused the scene time holds
// still and resumes from the same point.
func (tr *Tracer) Update(t, dt float32) {
	if tr.paused {
		tr.frozen += dt
	}
	tr.t = t - tr.frozen
	tr.dt = dt
}

func (tr *Tracer) Render() (err error) {
	if tr.err != nil {
		return tr.err
	}
	if tr.k == nil {
		return errors.New("app: render before init")
	}

	defer func() {
		if r := recover(); r != nil {
			tr.crash(r)
			err = fmt.Errorf("app: render panic: %v", r)
			tr.err = err
		}
	}()

	w, h := tr.sf.Width(), tr.sf.Height()
	start := tr.now()
	if err := tr.k.Render(w, h, tr.t, tr.fov); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	end := tr.now()
	tr.stats.add(end.Sub(start))
	if !tr.lastFrame.IsZero() {
		if d := end.Sub(tr.lastFrame).Seconds(); d > 0 {
			tr.fps = smooth(tr.fps, 1/d)
		}
	}
	tr.lastFrame = end

	buf := tr.sf.Buffer()
	f := tr.k.Frame()
	if len(buf) != len(f.Pix)*4 {
		return fmt.Errorf("app: surface holds %d bytes, frame needs %d", len(buf), len(f.Pix)*4)
	}
	f.RGBA(buf[:0])

	if tr.hud {
		tr.drawHUD()
	}
	if err := tr.sf.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}

	tr.frames++
	if tr.cfg.LogEvery > 0 && tr.frames%tr.cfg.LogEvery == 0 {
		tr.logf("app: frame %d %s", tr.frames, tr.stats)
		tr.stats = frameStats{last: tr.stats.last}
	}
	return nil
}

func (tr *Tracer) Exit() {
	if tr.k != nil {
		tr.k.Destroy()
	}
	if tr.frames > 0 {
		tr.logf("app: exit after %d frames", tr.frames)
	}
}

func (tr *Tracer) logf(format string, args ...any) {
	if tr.log == nil {
		return
	}
	tr.log.WriteLineString(fmt.Sprintf(format, args...))
}

func smooth(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return avg*0.9 + sample*0.1
}

// frameStats summarizes kernel render times.
type frameStats struct {
	n        int
	total    time.Duration
	min, max time.Duration
	last     time.Duration
}

func (s *frameStats) add(d time.Duration) {
	s.last = d
	if s.n == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
	s.n++
}

func (s frameStats) mean() time.Duration {
	if s.n == 0 {
		return 0
	}
	return s.total / time.Duration(s.n)
}

func (s frameStats) String() string {
	return fmt.Sprintf("render avg=%v min=%v max=%v over %d frames",
		s.mean().Round(time.Microsecond), s.min.Round(time.Microsecond), s.max.Round(time.Microsecond), s.n)
}
