package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool { return math32.Abs(a-b) < 1e-5 }

func TestVectorArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got, want := a.Add(b), V3(5, -3, 9); got != want {
		t.Fatalf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3(-3, 7, -3); got != want {
		t.Fatalf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), V3(2, 4, 6); got != want {
		t.Fatalf("Scale() = %v, want %v", got, want)
	}
	if got, want := a.Mul(b), V3(4, -10, 18); got != want {
		t.Fatalf("Mul() = %v, want %v", got, want)
	}
	if got, want := a.Dot(b), float32(12); got != want {
		t.Fatalf("Dot() = %v, want %v", got, want)
	}
	if got, want := All(0.5), V3(0.5, 0.5, 0.5); got != want {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if !near(n.X, 0.6) || n.Y != 0 || !near(n.Z, 0.8) {
		t.Fatalf("Normalize() = %v, want (0.6, 0, 0.8)", n)
	}
	if !near(n.Len(), 1) {
		t.Fatalf("Len() = %v, want 1", n.Len())
	}
	if got := Zero().Normalize(); got != Zero() {
		t.Fatalf("Zero().Normalize() = %v, want zero", got)
	}
}

func TestClamp(t *testing.T) {
	lo, hi := Zero(), All(255)
	got := V3(-4, 300, 17.5).Clamp(lo, hi)
	if want := V3(0, 255, 17.5); got != want {
		t.Fatalf("Clamp() = %v, want %v", got, want)
	}

	nan := math32.NaN()
	got = V3(nan, 1, nan).Clamp(lo, hi)
	if want := V3(0, 1, 0); got != want {
		t.Fatalf("Clamp(NaN) = %v, want %v", got, want)
	}
}
