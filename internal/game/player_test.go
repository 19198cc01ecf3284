package game

import (
	"math"
	"testing"
)

func TestPlayerUpdate_StaysInBounds(t *testing.T) {
	const w, h = 800.0, 600.0
	p := NewPlayer(Vec2{X: 400, Y: 300}, 15, 200)
	dirs := []Vec2{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
		{X: 1, Y: 1}, {X: -1, Y: -1}, {X: -1, Y: 1},
	}
	for _, dir := range dirs {
		for _, dt := range []float64{0, 0.016, 1, 10, 1000} {
			p.SetDirection(dir)
			p.Update(dt, w, h)
			if p.Pos.X < p.Radius || p.Pos.X > w-p.Radius ||
				p.Pos.Y < p.Radius || p.Pos.Y > h-p.Radius {
				t.Fatalf("dir=%+v dt=%g: player escaped bounds at %+v", dir, dt, p.Pos)
			}
		}
	}
}

func TestPlayerUpdate_ClampTracksResizedBounds(t *testing.T) {
	p := NewPlayer(Vec2{X: 790, Y: 300}, 15, 200)
	// Viewport shrank between frames: the clamp uses the new bounds.
	p.Update(0, 400, 300)
	if p.Pos.X != 400-p.Radius {
		t.Fatalf("expected clamp to x=%g, got %g", 400-p.Radius, p.Pos.X)
	}
	if p.Pos.Y != 300-p.Radius {
		t.Fatalf("expected clamp to y=%g, got %g", 300-p.Radius, p.Pos.Y)
	}
}

func TestSetDirection_NormalizesDiagonal(t *testing.T) {
	p := NewPlayer(Vec2{X: 100, Y: 100}, 15, 200)
	p.SetDirection(Vec2{X: 1, Y: 1})
	if math.Abs(p.Velocity.Len()-200) > 1e-9 {
		t.Fatalf("diagonal speed should be exactly 200, got %.4f", p.Velocity.Len())
	}
}

func TestSetDirection_ZeroStops(t *testing.T) {
	p := NewPlayer(Vec2{X: 100, Y: 100}, 15, 200)
	p.SetDirection(Vec2{X: 1})
	p.SetDirection(Vec2{})
	if p.Velocity != (Vec2{}) {
		t.Fatalf("zero direction should zero the velocity, got %+v", p.Velocity)
	}
}

func TestPlayerUpdate_Integrates(t *testing.T) {
	p := NewPlayer(Vec2{X: 100, Y: 100}, 15, 200)
	p.SetDirection(Vec2{X: 1})
	p.Update(0.5, 800, 600)
	if math.Abs(p.Pos.X-200) > 1e-9 || p.Pos.Y != 100 {
		t.Fatalf("expected (200,100) after 0.5s east at 200px/s, got %+v", p.Pos)
	}
}
