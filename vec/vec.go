// Package vec provides the float32 vector type shared by the scene and the
// ray tracing kernel.
package vec

import "github.com/chewxy/math32"

// Vector3 is a position, direction or RGB colour.
type Vector3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Zero returns (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// All returns a vector with every component set to s.
func All(s float32) Vector3 { return Vector3{s, s, s} }

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Mul is the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func (v Vector3) Normalize() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Clamp limits each component to [lo, hi] of the matching bound component.
// A NaN component becomes the lower bound.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{
		X: clamp(v.X, lo.X, hi.X),
		Y: clamp(v.Y, lo.Y, hi.Y),
		Z: clamp(v.Z, lo.Z, hi.Z),
	}
}

func clamp(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
