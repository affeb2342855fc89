package raytrace

import (
	"github.com/chewxy/math32"

	"roytracer/scene"
	"roytracer/vec"
)

// Eye is the fixed camera position. The camera looks down -Z.
var Eye = vec.V3(0, 0, 20)

type Ray struct {
	Origin vec.Vector3
	Dir    vec.Vector3 // unit length
}

// projection holds the per-frame camera terms shared by every pixel.
type projection struct {
	invW, invH float32
	scale      float32
	aspect     float32
}

func newProjection(width, height int, fovDegrees float32) projection {
	return projection{
		invW:   1 / float32(width),
		invH:   1 / float32(height),
		scale:  math32.Tan((math32.Pi * 0.5) * fovDegrees / 180),
		aspect: float32(width) / float32(height),
	}
}

// primary returns the camera ray through the centre of pixel (px, py).
func (p projection) primary(px, py int) Ray {
	xx := (2*((float32(px)+0.5)*p.invW) - 1) * p.scale * p.aspect
	yy := (1 - 2*((float32(py)+0.5)*p.invH)) * p.scale
	return Ray{Origin: Eye, Dir: vec.V3(xx, yy, -1).Normalize()}
}

// Intersect tests r against s. dist is the distance along the ray to the
// near surface and is meaningful only when hit is true.
//
// The projection onto the ray is clamped at zero, so a sphere entirely behind
// the origin only hits when the origin lies inside it.
func Intersect(r Ray, s *scene.Sphere) (dist float32, hit bool) {
	l := s.Center.Sub(r.Origin)
	proj := math32.Max(0, l.Dot(r.Dir))
	perp2 := l.Dot(l) - proj*proj
	rad2 := s.Radius * s.Radius
	// Grazing rays can push the argument below zero.
	half := math32.Sqrt(math32.Max(0, rad2-perp2))
	return proj - half, perp2 < rad2
}
