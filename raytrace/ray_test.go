package raytrace

import (
	"testing"

	"github.com/chewxy/math32"

	"roytracer/scene"
	"roytracer/vec"
)

func TestIntersect(t *testing.T) {
	unit := scene.Sphere{Center: vec.Zero(), Radius: 1}

	tests := []struct {
		name     string
		ray      Ray
		sphere   scene.Sphere
		wantHit  bool
		wantDist float32
	}{
		{
			name:     "aimed at centre",
			ray:      Ray{Origin: vec.V3(0, 0, 20), Dir: vec.V3(0, 0, -1)},
			sphere:   unit,
			wantHit:  true,
			wantDist: 19,
		},
		{
			name:     "aimed at offset centre",
			ray:      Ray{Origin: vec.V3(0, 0, 0), Dir: vec.V3(1, 0, 0)},
			sphere:   scene.Sphere{Center: vec.V3(10, 0, 0), Radius: 4},
			wantHit:  true,
			wantDist: 6,
		},
		{
			name:    "pointing away",
			ray:     Ray{Origin: vec.V3(0, 0, 20), Dir: vec.V3(0, 1, 0)},
			sphere:  unit,
			wantHit: false,
		},
		{
			name:    "sphere behind origin",
			ray:     Ray{Origin: vec.V3(0, 0, -20), Dir: vec.V3(0, 0, -1)},
			sphere:  unit,
			wantHit: false,
		},
		{
			name:    "tangent",
			ray:     Ray{Origin: vec.V3(1, 0, 20), Dir: vec.V3(0, 0, -1)},
			sphere:  unit,
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := Intersect(tt.ray, &tt.sphere)
			if hit != tt.wantHit {
				t.Fatalf("Intersect() hit = %v, want %v", hit, tt.wantHit)
			}
			if math32.IsNaN(dist) {
				t.Fatalf("Intersect() dist = NaN")
			}
			if hit && math32.Abs(dist-tt.wantDist) > 1e-4 {
				t.Fatalf("Intersect() dist = %v, want %v", dist, tt.wantDist)
			}
		})
	}
}

func TestIntersectNeverNaN(t *testing.T) {
	s := scene.Sphere{Center: vec.Zero(), Radius: 1}
	for _, x := range []float32{0.999, 1, 1.0001, 1.5, 50} {
		r := Ray{Origin: vec.V3(x, 0, 20), Dir: vec.V3(0, 0, -1)}
		dist, _ := Intersect(r, &s)
		if math32.IsNaN(dist) || math32.IsInf(dist, 0) {
			t.Fatalf("Intersect(x=%v) dist = %v, want finite", x, dist)
		}
	}
}

func TestPrimaryRay(t *testing.T) {
	// fov 90 gives scale 1.
	p := newProjection(5, 5, 90)
	r := p.primary(2, 2)
	if r.Origin != Eye {
		t.Fatalf("primary() origin = %v, want %v", r.Origin, Eye)
	}
	if r.Dir != vec.V3(0, 0, -1) {
		t.Fatalf("primary(centre) dir = %v, want (0, 0, -1)", r.Dir)
	}

	p = newProjection(4, 2, 90)
	got := p.primary(0, 0).Dir
	want := vec.V3(-1.5, 0.5, -1).Normalize()
	if math32.Abs(got.X-want.X) > 1e-6 || math32.Abs(got.Y-want.Y) > 1e-6 || math32.Abs(got.Z-want.Z) > 1e-6 {
		t.Fatalf("primary(0, 0) dir = %v, want %v", got, want)
	}
	if got.X >= 0 || got.Y <= 0 {
		t.Fatalf("primary(0, 0) dir = %v, want top-left quadrant", got)
	}
	if l := got.Len(); math32.Abs(l-1) > 1e-6 {
		t.Fatalf("primary(0, 0) |dir| = %v, want 1", l)
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		in   vec.Vector3
		want uint32
	}{
		{vec.Zero(), 0xFF000000},
		{vec.All(1), 0xFFFFFFFF},
		{vec.V3(1, 0.5, 0), 0xFFFF7F00},
		{vec.V3(4, -2, 0.25), 0xFFFF003F},
		{vec.V3(math32.NaN(), 0, 0), 0xFF000000},
	}
	for _, tt := range tests {
		if got := pack(tt.in); got != tt.want {
			t.Fatalf("pack(%v) = %#08x, want %#08x", tt.in, got, tt.want)
		}
	}
}
