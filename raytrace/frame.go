package raytrace

// Frame is a read-only view of a rendered buffer: row-major, top-left origin,
// one 0xAARRGGBB word per pixel.
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

func (f Frame) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[x+f.Width*y]
}

// RGBA expands the frame into 8-bit R, G, B, A bytes suitable for texture
// upload. dst is reused when it has room.
func (f Frame) RGBA(dst []byte) []byte {
	n := len(f.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range f.Pix {
		j := i * 4
		dst[j+0] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = byte(p >> 24)
	}
	return dst
}
