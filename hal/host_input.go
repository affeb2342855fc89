//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyBackspace:  KeyBackspace,
	ebiten.KeyTab:        KeyTab,
	ebiten.KeyF1:         KeyF1,
	ebiten.KeyF2:         KeyF2,
	ebiten.KeyF3:         KeyF3,
}

var hostButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

type hostInput struct {
	keys  []ebiten.Key
	chars []rune

	mx, my int
}

// poll forwards this tick's input to emit. It reports whether Q or Escape
// was pressed.
func (in *hostInput) poll(emit func(Event)) (quit bool) {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if k == ebiten.KeyEscape || k == ebiten.KeyQ {
			quit = true
		}
		if code, ok := hostKeys[k]; ok {
			emit(Event{Kind: EventKeyPress, Key: code, Press: true})
		}
	}

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		if r == ' ' {
			// Already reported as KeySpace.
			continue
		}
		emit(Event{Kind: EventKeyPress, Rune: r, Press: true})
	}

	if x, y := ebiten.CursorPosition(); x != in.mx || y != in.my {
		in.mx, in.my = x, y
		emit(Event{Kind: EventMouseMove, X: x, Y: y})
	}

	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			emit(Event{Kind: EventMouseButton, Button: int(b), Press: true, X: in.mx, Y: in.my})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			emit(Event{Kind: EventMouseButton, Button: int(b), Press: false, X: in.mx, Y: in.my})
		}
	}
	return quit
}
