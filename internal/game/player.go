package game

import "image/color"

var (
	playerColor  = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	spottedColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

// Player is the user-controlled entity. Velocity is written by the input
// resolver between frames; Update only integrates and clamps.
type Player struct {
	Entity
	Velocity Vec2
	Speed    float64 // pixels per second when moving
}

// NewPlayer creates a player at pos.
func NewPlayer(pos Vec2, radius, speed float64) *Player {
	return &Player{
		Entity: Entity{Pos: pos, Radius: radius, Color: playerColor},
		Speed:  speed,
	}
}

// SetDirection points the player along dir at full speed, or stops it if dir
// is zero. dir need not be unit length; it is normalized here so diagonal
// input moves no faster than cardinal input.
func (p *Player) SetDirection(dir Vec2) {
	p.Velocity = dir.Normalized().Scale(p.Speed)
}

// Update advances the player by velocity*dt and clamps it inside the arena.
// Bounds are read fresh every frame: the viewport can resize between frames.
func (p *Player) Update(dt float64, width, height float64) {
	p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
	p.Pos.X = clamp(p.Pos.X, p.Radius, width-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius, height-p.Radius)
}
