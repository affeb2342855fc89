package font3x5

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	GlyphWidth  = 3
	GlyphHeight = 5
	Advance     = 4
	LineHeight  = 6
)

// Font is a 3x5 monospace bitmap font for status overlays.
//
// It implements tinyfont.Fonter. Lowercase letters render as uppercase and
// anything outside printable ASCII renders as '?'.
var Font tinyfont.Fonter = font3x5{}

type font3x5 struct{}

type glyph struct {
	r rune
}

func (font3x5) GetYAdvance() uint8 { return LineHeight }

func (font3x5) GetGlyph(r rune) tinyfont.Glypher { return glyph{r: r} }

// Draw plots the glyph with its bottom row on baseline y.
func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * GlyphHeight
	for row := 0; row < GlyphHeight; row++ {
		b := glyphData[base+row]
		// Bit 2 is the leftmost pixel.
		for col := 0; col < GlyphWidth; col++ {
			if b&(0x4>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(GlyphHeight-1-row), c)
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphWidth,
		Height:   GlyphHeight,
		XAdvance: Advance,
		XOffset:  0,
		YOffset:  -(GlyphHeight - 1),
	}
}

func glyphIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0x20 || r > 0x5f {
		r = '?'
	}
	return int(r - 0x20)
}

var glyphData = [...]byte{
	0, 0, 0, 0, 0, // ' '
	2, 2, 2, 0, 2, // !
	5, 5, 0, 0, 0, // "
	5, 7, 5, 7, 5, // #
	3, 6, 2, 3, 6, // $
	5, 1, 2, 4, 5, // %
	2, 5, 2, 5, 3, // &
	2, 2, 0, 0, 0, // '
	1, 2, 2, 2, 1, // (
	4, 2, 2, 2, 4, // )
	0, 5, 2, 5, 0, // *
	0, 2, 7, 2, 0, // +
	0, 0, 0, 2, 4, // ,
	0, 0, 7, 0, 0, // -
	0, 0, 0, 0, 2, // .
	1, 1, 2, 4, 4, // /
	7, 5, 5, 5, 7, // 0
	2, 6, 2, 2, 7, // 1
	7, 1, 7, 4, 7, // 2
	7, 1, 3, 1, 7, // 3
	5, 5, 7, 1, 1, // 4
	7, 4, 7, 1, 7, // 5
	7, 4, 7, 5, 7, // 6
	7, 1, 1, 2, 2, // 7
	7, 5, 7, 5, 7, // 8
	7, 5, 7, 1, 7, // 9
	0, 2, 0, 2, 0, // :
	0, 2, 0, 2, 4, // ;
	1, 2, 4, 2, 1, // <
	0, 7, 0, 7, 0, // =
	4, 2, 1, 2, 4, // >
	7, 1, 3, 0, 2, // ?
	2, 5, 7, 4, 3, // @
	2, 5, 7, 5, 5, // A
	6, 5, 6, 5, 6, // B
	3, 4, 4, 4, 3, // C
	6, 5, 5, 5, 6, // D
	7, 4, 6, 4, 7, // E
	7, 4, 6, 4, 4, // F
	3, 4, 5, 5, 3, // G
	5, 5, 7, 5, 5, // H
	7, 2, 2, 2, 7, // I
	1, 1, 1, 5, 2, // J
	5, 5, 6, 5, 5, // K
	4, 4, 4, 4, 7, // L
	5, 7, 5, 5, 5, // M
	5, 7, 7, 7, 5, // N
	2, 5, 5, 5, 2, // O
	6, 5, 6, 4, 4, // P
	2, 5, 5, 7, 3, // Q
	6, 5, 7, 6, 5, // R
	3, 4, 2, 1, 6, // S
	7, 2, 2, 2, 2, // T
	5, 5, 5, 5, 7, // U
	5, 5, 5, 5, 2, // V
	5, 5, 7, 7, 5, // W
	5, 5, 2, 5, 5, // X
	5, 5, 2, 2, 2, // Y
	7, 1, 2, 4, 7, // Z
	6, 4, 4, 4, 6, // [
	4, 4, 2, 1, 1, // backslash
	3, 1, 1, 1, 3, // ]
	2, 5, 0, 0, 0, // ^
	0, 0, 0, 0, 7, // _
}
