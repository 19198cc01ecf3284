package game

import (
	"math"
	"testing"
)

func TestDeriveDirection_OpposingKeysCancel(t *testing.T) {
	d := DeriveDirection(KeyState{Left: true, Right: true})
	if d != (Vec2{}) {
		t.Fatalf("left+right should cancel to zero, got %+v", d)
	}
	d = DeriveDirection(KeyState{Up: true, Down: true, Left: true})
	if d != (Vec2{X: -1}) {
		t.Fatalf("up+down should cancel, leaving left, got %+v", d)
	}
}

func TestDeriveDirection_Diagonal(t *testing.T) {
	d := DeriveDirection(KeyState{Up: true, Right: true})
	if d != (Vec2{X: 1, Y: -1}) {
		t.Fatalf("up+right should give (1,-1), got %+v", d)
	}
}

func TestDeriveDirection_NoKeys(t *testing.T) {
	if d := DeriveDirection(KeyState{}); d != (Vec2{}) {
		t.Fatalf("no keys should give zero, got %+v", d)
	}
}

func TestTouchDirection_DeadZone(t *testing.T) {
	ts := TouchState{active: true, anchor: Vec2{X: 100, Y: 100}, cur: Vec2{X: 105, Y: 100}}
	if d := ts.Direction(); d != (Vec2{}) {
		t.Fatalf("drag inside dead zone should give zero, got %+v", d)
	}
}

func TestTouchDirection_Drag(t *testing.T) {
	ts := TouchState{active: true, anchor: Vec2{X: 100, Y: 100}, cur: Vec2{X: 140, Y: 70}}
	d := ts.Direction()
	if d == (Vec2{}) {
		t.Fatal("drag past the dead zone should give a direction")
	}
	// Direction matters, not magnitude: SetDirection normalizes.
	ang := math.Atan2(d.Y, d.X)
	want := math.Atan2(-30, 40)
	if math.Abs(ang-want) > 1e-9 {
		t.Fatalf("expected drag angle %.4f, got %.4f", want, ang)
	}
}

func TestTouchDirection_Inactive(t *testing.T) {
	ts := TouchState{anchor: Vec2{X: 100, Y: 100}, cur: Vec2{X: 200, Y: 200}}
	if d := ts.Direction(); d != (Vec2{}) {
		t.Fatalf("released touch should give zero, got %+v", d)
	}
}
