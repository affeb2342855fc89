package raytrace

import (
	"github.com/chewxy/math32"

	"roytracer/scene"
	"roytracer/vec"
)

const (
	// shadowBias lifts shadow ray origins off the surface.
	shadowBias = 0.01
	// shadowFactor scales a light's contribution when the shadow ray is blocked.
	shadowFactor = 0.1
	background   = 0xFF000000
)

var (
	colorMin = vec.Zero()
	colorMax = vec.All(255)
)

// shader traces single pixels against a scene snapshot. It holds no mutable
// state and is shared by all workers of a frame.
type shader struct {
	spheres []scene.Sphere
	lights  []scene.Light
	proj    projection

	samples       int
	invSamples    float32
	singleDiffuse bool
}

// nearest returns the closest sphere hit along r, or nil.
func (sh *shader) nearest(r Ray) (*scene.Sphere, float32) {
	tn := float32(math32.MaxFloat32)
	var best *scene.Sphere
	for i := range sh.spheres {
		dist, ok := Intersect(r, &sh.spheres[i])
		if ok && dist < tn {
			tn = dist
			best = &sh.spheres[i]
		}
	}
	return best, tn
}

func (sh *shader) occluded(r Ray) bool {
	for i := range sh.spheres {
		if _, ok := Intersect(r, &sh.spheres[i]); ok {
			return true
		}
	}
	return false
}

// radiance returns the unscaled colour seen along the primary ray r.
func (sh *shader) radiance(r Ray) vec.Vector3 {
	s, tn := sh.nearest(r)
	if s == nil {
		return vec.Zero()
	}

	phit := r.Origin.Add(r.Dir.Scale(tn))
	nhit := phit.Sub(s.Center).Normalize()
	lifted := phit.Add(nhit.Scale(shadowBias))

	pixel := vec.Zero()
	for i := range sh.lights {
		l := &sh.lights[i]
		tr := vec.All(1)
		for sa := 0; sa < sh.samples; sa++ {
			target := l.Pos.Add(vec.All(float32(sa) * sh.invSamples))
			ld := target.Sub(phit).Normalize()
			if sh.occluded(Ray{Origin: lifted, Dir: ld}) {
				tr = vec.All(shadowFactor)
			}
			lambert := math32.Max(0, nhit.Dot(ld))
			pixel = pixel.Add(s.Diffuse.Mul(tr).Scale(lambert).Mul(l.Emission).Scale(sh.invSamples))
		}
	}
	if !sh.singleDiffuse {
		pixel = pixel.Mul(s.Diffuse)
	}
	return pixel
}

// pixel returns the packed colour for (x, y).
func (sh *shader) pixel(x, y int) uint32 {
	return pack(sh.radiance(sh.proj.primary(x, y)))
}

// pack converts a [0,1] colour to 0xAARRGGBB with opaque alpha.
func pack(c vec.Vector3) uint32 {
	c = c.Scale(255).Clamp(colorMin, colorMax)
	return background | uint32(c.X)<<16 | uint32(c.Y)<<8 | uint32(c.Z)
}
