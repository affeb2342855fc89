//go:build cgo

package hal

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"roytracer/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width    int
	Height   int
	Title    string
	Timestep time.Duration
	MaxSteps int
	// TPS is how often input is polled and the fixed-step clock advanced.
	TPS int
	// FlipVertical shows row 0 at the bottom, like a texture with a
	// bottom-left origin.
	FlipVertical bool
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 1024
	}
	if c.Title == "" {
		c.Title = "roytracer"
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// RunWindow opens a resizable desktop window showing the app's surface and
// forwards keyboard and mouse input. Q or Escape closes it.
// It blocks until the window closes.
func RunWindow(app App, cfg WindowConfig) error {
	cfg = cfg.withDefaults()

	h := newHost(cfg.Width, cfg.Height)
	if err := app.Init(h); err != nil {
		return err
	}
	defer app.Exit()

	g := &hostGame{
		h:     h,
		app:   app,
		st:    newStepper(cfg.Timestep, cfg.MaxSteps, nil),
		flip:  cfg.FlipVertical,
		lastW: cfg.Width,
		lastH: cfg.Height,
	}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h   *host
	app App
	st  *stepper
	in  hostInput

	img     *ebiten.Image
	scratch []byte
	flip    bool

	lastW, lastH int
	resized      bool
	renderErr    error
}

func (g *hostGame) Update() error {
	if g.renderErr != nil {
		return g.renderErr
	}
	if g.resized {
		g.resized = false
		g.app.OnEvent(Event{Kind: EventWindowResize, X: g.lastW, Y: g.lastH})
	}
	// inpututil edges hold for a whole tick, so poll once per Update rather
	// than once per fixed step.
	if g.in.poll(g.app.OnEvent) {
		return ebiten.Termination
	}
	g.st.advance(g.app, nil)
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if err := g.app.Render(); err != nil {
		g.renderErr = err
		return
	}

	var w, h int
	g.scratch, w, h, _ = g.h.sf.snapshot(g.scratch)
	if w <= 0 || h <= 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(g.scratch)

	op := &ebiten.DrawImageOptions{}
	if g.flip {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(h))
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sw != w || sh != h {
		op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
	}
	screen.DrawImage(g.img, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.lastW || outsideHeight != g.lastH) {
		g.lastW = outsideWidth
		g.lastH = outsideHeight
		g.resized = true
	}
	return g.lastW, g.lastH
}
