package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Entity is the shared renderable shape: a filled circle with a position,
// radius and color. Player and Enemy embed it; behavior lives on the variants.
type Entity struct {
	Pos    Vec2
	Radius float64
	Color  color.RGBA
}

// Draw fills the entity's circle on screen. It never mutates state.
func (e *Entity) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen,
		float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), e.Color, true)
}
