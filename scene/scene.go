// Package scene holds the fixed sphere and light sets rendered by the kernel.
package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"roytracer/vec"
)

var ErrInvalidRadius = errors.New("sphere radius must be positive")

type Sphere struct {
	Center  vec.Vector3
	Radius  float32
	Diffuse vec.Vector3
}

// Orbit moves a light around the Y axis in the X-Z plane.
// A zero Radius keeps the light static.
type Orbit struct {
	Radius float32
	Rate   float32 // rad/s
}

type Light struct {
	Pos      vec.Vector3
	Emission vec.Vector3
	Orbit    Orbit
}

// Scene owns its spheres and lights. Only light positions change after
// construction, and only through AdvanceLights.
type Scene struct {
	spheres []Sphere
	lights  []Light
}

// New copies the given sets into a Scene.
func New(spheres []Sphere, lights []Light) (*Scene, error) {
	for i, s := range spheres {
		if !(s.Radius > 0) {
			return nil, fmt.Errorf("%w: sphere %d radius %v", ErrInvalidRadius, i, s.Radius)
		}
	}
	return &Scene{
		spheres: append([]Sphere(nil), spheres...),
		lights:  append([]Light(nil), lights...),
	}, nil
}

func MustNew(spheres []Sphere, lights []Light) *Scene {
	s, err := New(spheres, lights)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scene) Spheres() []Sphere { return s.spheres }
func (s *Scene) Lights() []Light   { return s.lights }

// AdvanceLights places every orbiting light at its position for elapsed time t.
// The result depends on t only, never on earlier calls.
func (s *Scene) AdvanceLights(t float32) {
	for i := range s.lights {
		l := &s.lights[i]
		if l.Orbit.Radius == 0 {
			continue
		}
		sin, cos := math32.Sincos(l.Orbit.Rate * t)
		l.Pos.X = sin * l.Orbit.Radius
		l.Pos.Z = -cos * l.Orbit.Radius
	}
}

// Reference returns a fresh copy of the demo scene: five coloured spheres,
// a large sphere acting as the floor, and one white light circling at
// radius 20 once every 2π seconds.
func Reference() *Scene {
	return MustNew(
		[]Sphere{
			{Center: vec.V3(0, 0, 0), Radius: 1, Diffuse: vec.V3(0.5, 0.5, 0.5)},
			{Center: vec.V3(0, 6, 0), Radius: 4, Diffuse: vec.V3(1, 0, 0)},
			{Center: vec.V3(0, -6, 0), Radius: 3, Diffuse: vec.V3(1, 1, 1)},
			{Center: vec.V3(6, 0, -5), Radius: 3, Diffuse: vec.V3(0, 1, 0)},
			{Center: vec.V3(-6, 0, 0), Radius: 3, Diffuse: vec.V3(0, 0, 1)},
			{Center: vec.V3(0, 10010, 0), Radius: 10000, Diffuse: vec.V3(0.75, 0.75, 0.75)},
		},
		[]Light{
			{Pos: vec.V3(0, -15, 0), Emission: vec.V3(1, 1, 1), Orbit: Orbit{Radius: 20, Rate: 1}},
		},
	)
}
