package game

import (
	"math"
	"testing"
)

func TestNormalizeAngle_HalfTurn(t *testing.T) {
	// Facing 0, bearing π (directly behind): the difference must stay at ±π,
	// never wrap to 0.
	a := normalizeAngle(math.Pi - 0)
	if math.Abs(math.Abs(a)-math.Pi) > 1e-9 {
		t.Fatalf("π should normalize to ±π, got %.4f", a)
	}
}

func TestNormalizeAngle_Wraps(t *testing.T) {
	a := normalizeAngle(3 * math.Pi)
	if math.Abs(math.Abs(a)-math.Pi) > 1e-9 {
		t.Fatalf("3π should normalize to ±π, got %.4f", a)
	}
	a = normalizeAngle(-5 * math.Pi / 2)
	if math.Abs(a+math.Pi/2) > 1e-9 {
		t.Fatalf("-5π/2 should normalize to -π/2, got %.4f", a)
	}
	if normalizeAngle(0) != 0 {
		t.Fatal("0 should normalize to 0")
	}
}

func TestHeadingTo(t *testing.T) {
	h := HeadingTo(Vec2{}, Vec2{X: 1})
	if h != 0 {
		t.Fatalf("heading to east should be 0, got %.4f", h)
	}
	h = HeadingTo(Vec2{}, Vec2{Y: 1})
	if math.Abs(h-math.Pi/2) > 1e-9 {
		t.Fatalf("heading straight down should be π/2, got %.4f", h)
	}
}

func TestNormalized_ZeroVector(t *testing.T) {
	v := Vec2{}.Normalized()
	if v != (Vec2{}) {
		t.Fatalf("zero vector should normalize to zero, got %+v", v)
	}
}

func TestNormalized_UnitLength(t *testing.T) {
	v := Vec2{X: 3, Y: -4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Fatalf("normalized length should be 1, got %.6f", v.Len())
	}
}

func TestDist(t *testing.T) {
	d := Dist(Vec2{X: 1, Y: 2}, Vec2{X: 4, Y: 6})
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %.4f", d)
	}
}
