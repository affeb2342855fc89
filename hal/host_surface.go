package hal

import "sync"

// hostSurface is double buffered: the app draws into back, Present copies it
// to front, and the window uploads from front.
type hostSurface struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	back   []byte
	front  []byte
	frames uint64
}

func newHostSurface(width, height int) *hostSurface {
	s := &hostSurface{}
	s.Resize(width, height)
	return s
}

func (s *hostSurface) Width() int          { return s.width }
func (s *hostSurface) Height() int         { return s.height }
func (s *hostSurface) Format() PixelFormat { return PixelFormatRGBA8888 }
func (s *hostSurface) StrideBytes() int    { return s.stride }
func (s *hostSurface) Buffer() []byte      { return s.back }

func (s *hostSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height && s.back != nil {
		return
	}
	s.width = width
	s.height = height
	s.stride = width * 4
	s.back = make([]byte, s.stride*height)
	s.front = make([]byte, s.stride*height)
}

func (s *hostSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.front, s.back)
	s.frames++
	return nil
}

// snapshot copies the last presented frame into dst, growing it as needed.
func (s *hostSurface) snapshot(dst []byte) (buf []byte, width, height int, frames uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cap(dst) < len(s.front) {
		dst = make([]byte, len(s.front))
	}
	dst = dst[:len(s.front)]
	copy(dst, s.front)
	return dst, s.width, s.height, s.frames
}
