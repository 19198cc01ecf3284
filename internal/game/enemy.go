package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// arrivalDist is how close an enemy must get to a patrol point before the
	// next one is selected.
	arrivalDist = 5.0

	defaultEnemySpeed     = 100.0
	defaultVisionAngleDeg = 60.0
	defaultVisionRange    = 200.0
)

var enemyColor = color.RGBA{R: 70, G: 110, B: 230, A: 255}

// Enemy patrols a cyclic list of waypoints and watches for the player through
// an angular vision cone.
type Enemy struct {
	Entity
	Patrol      []Vec2
	TargetIndex int
	Speed       float64 // pixels per second
	VisionAngle float64 // radians, total arc width
	VisionRange float64 // pixels
	Facing      float64 // radians, 0 = right
	Detected    bool    // did this enemy see the player last frame
}

// NewEnemy creates an enemy at pos patrolling the given waypoints. With no
// waypoints the enemy stands still and its facing never changes.
func NewEnemy(pos Vec2, radius float64, patrol []Vec2) *Enemy {
	return &Enemy{
		Entity:      Entity{Pos: pos, Radius: radius, Color: enemyColor},
		Patrol:      patrol,
		Speed:       defaultEnemySpeed,
		VisionAngle: defaultVisionAngleDeg * math.Pi / 180.0,
		VisionRange: defaultVisionRange,
	}
}

// Update advances the enemy toward its current patrol point. Reaching a point
// (within arrivalDist) selects the next one cyclically and neither moves nor
// turns this frame; the new heading is taken up on the following frame.
func (e *Enemy) Update(dt float64) {
	if len(e.Patrol) == 0 {
		return
	}
	target := e.Patrol[e.TargetIndex]
	if Dist(e.Pos, target) < arrivalDist {
		e.TargetIndex = (e.TargetIndex + 1) % len(e.Patrol)
		return
	}
	e.Facing = HeadingTo(e.Pos, target)
	dir := Vec2{target.X - e.Pos.X, target.Y - e.Pos.Y}.Normalized()
	e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))
}

// CheckDetection reports whether the player is inside this enemy's vision
// cone, and records the result on e.Detected. The stored flag and the return
// value always agree; callers rely on the flag for cone coloring.
func (e *Enemy) CheckDetection(p *Player) bool {
	if Dist(e.Pos, p.Pos) > e.VisionRange {
		e.Detected = false
		return false
	}
	diff := normalizeAngle(HeadingTo(e.Pos, p.Pos) - e.Facing)
	e.Detected = math.Abs(diff) < e.VisionAngle/2
	return e.Detected
}

// addConePath appends the vision-cone triangle to path: apex at the enemy,
// two edges at facing ± half-angle out to VisionRange.
func (e *Enemy) addConePath(path *vector.Path) {
	half := e.VisionAngle / 2
	ax, ay := float32(e.Pos.X), float32(e.Pos.Y)
	lx := e.Pos.X + math.Cos(e.Facing-half)*e.VisionRange
	ly := e.Pos.Y + math.Sin(e.Facing-half)*e.VisionRange
	rx := e.Pos.X + math.Cos(e.Facing+half)*e.VisionRange
	ry := e.Pos.Y + math.Sin(e.Facing+half)*e.VisionRange
	path.MoveTo(ax, ay)
	path.LineTo(float32(lx), float32(ly))
	path.LineTo(float32(rx), float32(ry))
	path.Close()
}
