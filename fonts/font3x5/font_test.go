package font3x5

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	px map[[2]int16]color.RGBA
}

func (r *recorder) Size() (x, y int16) { return 32, 32 }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	if r.px == nil {
		r.px = make(map[[2]int16]color.RGBA)
	}
	r.px[[2]int16{x, y}] = c
}
func (r *recorder) Display() error { return nil }

func TestGlyphTableComplete(t *testing.T) {
	if got, want := len(glyphData), 64*GlyphHeight; got != want {
		t.Fatalf("len(glyphData) = %d, want %d", got, want)
	}
	for i, b := range glyphData {
		if b > 7 {
			t.Fatalf("glyphData[%d] = %d, want 3-bit row", i, b)
		}
	}
}

func TestDrawGlyph(t *testing.T) {
	var d recorder
	fg := color.RGBA{R: 0xff, A: 0xff}
	Font.GetGlyph('I').Draw(&d, 10, 20, fg)

	// I: top and bottom bars, one centre column between.
	if len(d.px) != 9 {
		t.Fatalf("'I' drew %d pixels, want 9", len(d.px))
	}
	for _, p := range [][2]int16{{10, 16}, {12, 16}, {11, 18}, {10, 20}, {12, 20}} {
		if c, ok := d.px[p]; !ok || c != fg {
			t.Fatalf("pixel %v = %v, %v; want set", p, c, ok)
		}
	}
	if _, ok := d.px[[2]int16{10, 18}]; ok {
		t.Fatal("pixel (10, 18) set, want clear")
	}
}

func TestLowercaseFoldsAndUnknown(t *testing.T) {
	if glyphIndex('a') != glyphIndex('A') {
		t.Fatal("expected lowercase to share uppercase glyph")
	}
	if glyphIndex('é') != glyphIndex('?') || glyphIndex('\n') != glyphIndex('?') {
		t.Fatal("expected unknown runes to map to '?'")
	}
	if glyphIndex('{') != glyphIndex('?') {
		t.Fatal("expected '{' to map to '?'")
	}
}

func TestMetrics(t *testing.T) {
	info := Font.GetGlyph('0').Info()
	if info.XAdvance != Advance || info.Width != GlyphWidth || info.Height != GlyphHeight {
		t.Fatalf("Info() = %+v, want %dx%d advance %d", info, GlyphWidth, GlyphHeight, Advance)
	}
	if got := Font.GetYAdvance(); got != LineHeight {
		t.Fatalf("GetYAdvance() = %d, want %d", got, LineHeight)
	}
	if _, w := tinyfont.LineWidth(Font, "0"); w != Advance {
		t.Fatalf("LineWidth(\"0\") outbox = %d, want %d", w, Advance)
	}
}
