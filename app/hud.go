package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"roytracer/fonts/font3x5"
	"roytracer/hal"
)

var (
	hudFG     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudShadow = color.RGBA{A: 0xff}
)

const hudMargin = 2

// surfaceDisplay lets tinyfont draw into an RGBA8888 surface.
type surfaceDisplay struct {
	sf hal.Surface
}

func (d surfaceDisplay) Size() (x, y int16) {
	if d.sf == nil {
		return 0, 0
	}
	return int16(d.sf.Width()), int16(d.sf.Height())
}

func (d surfaceDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.sf == nil || d.sf.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.sf.Width() || iy >= d.sf.Height() {
		return
	}
	buf := d.sf.Buffer()
	off := iy*d.sf.StrideBytes() + ix*4
	if off+3 >= len(buf) {
		return
	}
	buf[off+0] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = c.A
}

func (d surfaceDisplay) Display() error { return nil }

func (tr *Tracer) hudLines() []string {
	lines := []string{
		fmt.Sprintf("FPS %.0f %.1fMS", tr.fps, float64(tr.stats.last.Microseconds())/1000),
		fmt.Sprintf("FOV %.0f T %.2f", tr.fov, tr.t),
		fmt.Sprintf("%dX%d X%d", tr.sf.Width(), tr.sf.Height(), tr.k.Workers()),
	}
	if tr.paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

func (tr *Tracer) drawHUD() {
	d := surfaceDisplay{sf: tr.sf}
	for i, s := range tr.hudLines() {
		drawText(d, hudMargin, hudMargin+int16(i)*font3x5.LineHeight, s)
	}
}

// drawText writes s with its top-left corner at (x, y) and a one pixel drop
// shadow.
func drawText(d surfaceDisplay, x, y int16, s string) {
	base := y + font3x5.GlyphHeight - 1
	tinyfont.WriteLine(d, font3x5.Font, x+1, base+1, s, hudShadow)
	tinyfont.WriteLine(d, font3x5.Font, x, base, s, hudFG)
}
