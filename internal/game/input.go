package game

import "github.com/hajimehoshi/ebiten/v2"

// KeyState is the set of movement keys currently held. It is an explicit
// value so velocity derivation stays a pure function, testable without a
// running ebiten loop.
type KeyState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// readKeyboard samples the held movement keys. Arrows and WASD are
// equivalent.
func readKeyboard() KeyState {
	return KeyState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// DeriveDirection turns held keys into a movement direction. Opposing keys
// cancel; the result is not normalized (Player.SetDirection does that).
func DeriveDirection(ks KeyState) Vec2 {
	var d Vec2
	if ks.Up {
		d.Y -= 1
	}
	if ks.Down {
		d.Y += 1
	}
	if ks.Left {
		d.X -= 1
	}
	if ks.Right {
		d.X += 1
	}
	return d
}

// touchDeadZone is how far (pixels) a touch must drag from its anchor before
// it counts as movement, so a tap does not nudge the player.
const touchDeadZone = 12.0

// TouchState tracks a single-point drag joystick: the first touch down
// becomes the anchor, and the drag from anchor to current point is the
// movement direction until release.
type TouchState struct {
	active bool
	id     ebiten.TouchID
	anchor Vec2
	cur    Vec2
}

// update samples the current touches. Only the first reported touch is
// tracked; extra fingers are ignored.
func (t *TouchState) update(ids []ebiten.TouchID) {
	if len(ids) == 0 {
		t.active = false
		return
	}
	id := ids[0]
	x, y := ebiten.TouchPosition(id)
	pos := Vec2{float64(x), float64(y)}
	if !t.active || t.id != id {
		t.active = true
		t.id = id
		t.anchor = pos
	}
	t.cur = pos
}

// Direction returns the drag direction, or the zero vector when no touch is
// active or the drag is inside the dead zone.
func (t *TouchState) Direction() Vec2 {
	if !t.active {
		return Vec2{}
	}
	d := Vec2{t.cur.X - t.anchor.X, t.cur.Y - t.anchor.Y}
	if d.Len() < touchDeadZone {
		return Vec2{}
	}
	return d
}
