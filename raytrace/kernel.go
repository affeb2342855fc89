// Package raytrace renders a scene of spheres and point lights into a packed
// RGBA pixel buffer.
//
// Each frame traces one primary ray per pixel from a fixed pinhole camera,
// shades the nearest hit with Lambertian lighting and one hard shadow ray per
// light sample, and packs the result as 0xAARRGGBB with opaque alpha. Rows are
// traced in parallel; pixels never depend on each other.
//
// A Kernel is driven from a single goroutine: Init, then Render once per frame
// with Resize between frames as the output changes size, then Destroy.
package raytrace

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"roytracer/scene"
)

// MaxPixels bounds the buffer size accepted by Init and Resize.
const MaxPixels = 1 << 26

var (
	ErrAllocation = errors.New("raytrace: cannot allocate pixel buffer")
	ErrDestroyed  = errors.New("raytrace: kernel destroyed")
)

type Options struct {
	// Workers is the number of goroutines tracing rows. <= 0 uses NumCPU.
	Workers int
	// LightSamples is the number of shadow rays per light. <= 0 means 1.
	LightSamples int
	// SingleDiffuse applies the surface colour once. By default the summed
	// light is multiplied by it a second time, darkening every surface.
	SingleDiffuse bool
}

type Kernel struct {
	mu sync.Mutex

	scene *scene.Scene
	opts  Options
	pool  *pool

	width  int
	height int
	pix    []uint32

	destroyed bool
}

// Init allocates a zeroed width×height buffer for rendering sc.
// The kernel owns sc from here on and animates its lights.
func Init(sc *scene.Scene, width, height int, opts Options) (*Kernel, error) {
	if opts.LightSamples <= 0 {
		opts.LightSamples = 1
	}
	k := &Kernel{
		scene: sc,
		opts:  opts,
		pool:  newPool(opts.Workers),
	}
	if err := k.alloc(width, height); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *Kernel) Workers() int { return k.pool.workers }

// Resize reallocates the buffer. Its content is undefined until the next Render.
func (k *Kernel) Resize(width, height int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.destroyed {
		return ErrDestroyed
	}
	return k.alloc(width, height)
}

func (k *Kernel) alloc(width, height int) error {
	n, err := bufferLen(width, height)
	if err != nil {
		return err
	}
	if width == k.width && height == k.height && k.pix != nil {
		return nil
	}
	if cap(k.pix) >= n {
		k.pix = k.pix[:n]
	} else {
		k.pix = make([]uint32, n)
	}
	k.width = width
	k.height = height
	return nil
}

func bufferLen(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: invalid size %dx%d", ErrAllocation, width, height)
	}
	if width > math.MaxInt/height || width*height > MaxPixels {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, MaxPixels)
	}
	return width * height, nil
}

// Render animates the lights for time t and traces a full frame with the
// given vertical field of view. The buffer is resized first if width or
// height differ from its current size.
func (k *Kernel) Render(width, height int, t, fovDegrees float32) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.destroyed {
		return ErrDestroyed
	}
	if err := k.alloc(width, height); err != nil {
		return err
	}

	// Lights must be in place before any worker reads them.
	k.scene.AdvanceLights(t)

	sh := &shader{
		spheres:       k.scene.Spheres(),
		lights:        k.scene.Lights(),
		proj:          newProjection(width, height, fovDegrees),
		samples:       k.opts.LightSamples,
		invSamples:    1 / float32(k.opts.LightSamples),
		singleDiffuse: k.opts.SingleDiffuse,
	}
	pix := k.pix
	k.pool.run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := pix[y*width : (y+1)*width]
			for x := range row {
				row[x] = sh.pixel(x, y)
			}
		}
	})
	return nil
}

// Frame returns the current buffer without copying. It stays valid until the
// next Render, Resize or Destroy.
func (k *Kernel) Frame() Frame {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Frame{Width: k.width, Height: k.height, Pix: k.pix}
}

// Destroy releases the buffer. Later calls other than Frame and Destroy
// return ErrDestroyed.
func (k *Kernel) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.destroyed = true
	k.pix = nil
	k.width = 0
	k.height = 0
}
