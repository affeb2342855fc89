package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"roytracer/fonts/font3x5"
)

var crashFG = color.RGBA{A: 0xff}

// crash logs a recovered render panic and replaces the frame with a white
// screen listing it, so the window shows why it stopped.
func (tr *Tracer) crash(v any) {
	stack := debug.Stack()
	tr.logf("app: render panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			tr.logf("%s", line)
		}
	}

	if tr.sf == nil {
		return
	}
	buf := tr.sf.Buffer()
	for i := range buf {
		buf[i] = 0xff
	}

	cols := int16(tr.sf.Width()-2*hudMargin) / font3x5.Advance
	if cols <= 0 {
		_ = tr.sf.Present()
		return
	}
	maxY := int16(tr.sf.Height())

	d := surfaceDisplay{sf: tr.sf}
	lines := []string{"RENDER PANIC:", fmt.Sprint(v)}
	y := int16(hudMargin)
	for _, line := range lines {
		for len(line) > 0 && y+font3x5.LineHeight <= maxY {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font3x5.Font, hudMargin, y+font3x5.GlyphHeight-1, chunk, crashFG)
			y += font3x5.LineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = tr.sf.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
