package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the surface pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Surface is the presentation surface: a pixel buffer the app fills each
// frame plus a "present" hook that publishes it for display.
type Surface interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Resize(width, height int)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyTab
	KeyF1
	KeyF2
	KeyF3
)

// EventKind tags an Event.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventWindowResize
	EventKeyPress
	EventMouseMove
	EventMouseButton
)

// Event is an input or window event.
//
// Resize: X, Y hold the new size. KeyPress: Key or Rune is set.
// MouseMove: X, Y hold the cursor. MouseButton: Button and Press.
type Event struct {
	Kind   EventKind
	Key    KeyCode
	Rune   rune
	X, Y   int
	Button int
	Press  bool
}

// Platform is what an App sees of the host.
type Platform interface {
	Logger() Logger
	Surface() Surface
}

// App is driven by a runner: Init once, then OnEvent and Update at a fixed
// timestep and Render once per displayed frame, then Exit.
type App interface {
	Init(p Platform) error
	OnEvent(e Event)
	Update(t, dt float32)
	Render() error
	Exit()
}
