package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shadow-patrol/internal/config"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 30, A: 255}
	coneColor       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	coneAlertColor  = color.RGBA{R: 255, G: 70, B: 70, A: 255}
)

// coneOpacity is the composite opacity of the vision-cone layer.
const coneOpacity = 0.35

// Game owns the player and enemies and runs one simulation step plus one
// render per frame tick. It implements ebiten.Game; the headless driver calls
// Advance directly instead.
type Game struct {
	level  *config.Level
	width  float64 // live viewport bounds, updated by Layout on resize
	height float64

	player  *Player
	enemies []*Enemy

	score    float64
	detected bool // any enemy saw the player last step
	paused   bool

	lastTime float64 // ms; valid only when hasTime
	hasTime  bool
	clock    func() float64 // ms since an arbitrary epoch

	stats RunStats

	prevKeys  map[ebiten.Key]bool
	touch     TouchState
	touchIDs  []ebiten.TouchID
	hud       *hud
	coneBuf   *ebiten.Image
	noteText  string  // transient HUD notice (report copied etc.)
	noteUntil float64 // ms timestamp the notice expires at
}

// New builds a game from a level layout. The viewport starts at the arena
// size and follows the window from then on.
func New(lvl *config.Level) *Game {
	start := time.Now()
	g := &Game{
		level:    lvl,
		width:    lvl.Arena.Width,
		height:   lvl.Arena.Height,
		clock:    func() float64 { return time.Since(start).Seconds() * 1000 },
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.spawn()
	return g
}

// spawn (re)creates the entities from the level definition.
func (g *Game) spawn() {
	lvl := g.level
	g.player = NewPlayer(Vec2{lvl.Player.X, lvl.Player.Y}, lvl.Player.Radius, lvl.Player.Speed)
	g.enemies = g.enemies[:0]
	for _, ed := range lvl.Enemies {
		patrol := make([]Vec2, len(ed.Patrol))
		for i, p := range ed.Patrol {
			patrol[i] = Vec2{p.X, p.Y}
		}
		e := NewEnemy(Vec2{ed.X, ed.Y}, ed.Radius, patrol)
		e.Speed = ed.Speed
		e.VisionAngle = ed.VisionAngleDeg * math.Pi / 180.0
		e.VisionRange = ed.VisionRange
		g.enemies = append(g.enemies, e)
	}
	g.stats.reset(len(g.enemies))
}

// Restart rebuilds the level and zeroes score, detection state and run
// stats. The frame clock is left alone so the next delta stays small.
func (g *Game) Restart() {
	g.spawn()
	g.score = 0
	g.detected = false
}

// Score returns the accrued undetected time in seconds.
func (g *Game) Score() float64 { return g.score }

// DetectedNow reports whether any enemy saw the player last step.
func (g *Game) DetectedNow() bool { return g.detected }

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool { return g.paused }

// SetPaused freezes or resumes the simulation. Rendering continues either
// way.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Player exposes the player for input drivers and tests.
func (g *Game) Player() *Player { return g.player }

// Enemies exposes the enemy list for tests and the headless reporter.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Resize sets the viewport bounds consumed by the player's clamp and the HUD
// anchors.
func (g *Game) Resize(width, height float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g.width = width
	g.height = height
}

// Advance feeds the frame driver one timestamp in milliseconds. Timestamps
// must be monotonically non-decreasing; the first one observed becomes the
// baseline, so frame one runs with dt=0. While paused the baseline still
// advances (no catch-up jump on resume) but the step is skipped.
func (g *Game) Advance(timestampMs float64) {
	if !g.hasTime {
		g.hasTime = true
		g.lastTime = timestampMs
		g.step(0)
		return
	}
	dt := (timestampMs - g.lastTime) / 1000.0
	g.lastTime = timestampMs
	if g.paused {
		return
	}
	g.step(dt)
}

// step runs one simulation step: move the player, move every enemy and
// refresh its detection flag, then fold the flags into the game-level
// detection state and the score.
func (g *Game) step(dt float64) {
	wasDetected := g.detected

	g.player.Update(dt, g.width, g.height)

	anyDetection := false
	for _, e := range g.enemies {
		e.Update(dt)
		if e.CheckDetection(g.player) {
			anyDetection = true
		}
	}

	if anyDetection {
		g.player.Color = spottedColor
		g.detected = true
	} else {
		g.player.Color = playerColor
		// Reads the pre-step flag, so the frame that transitions back to
		// undetected accrues nothing. Intentional; see DESIGN.md.
		if !g.detected {
			g.score += dt
		}
		g.detected = false
	}

	g.stats.record(dt, wasDetected, g.detected, g.enemies)
}

// Update is the ebiten per-frame hook: input, then one Advance with the wall
// clock.
func (g *Game) Update() error {
	g.handleInput()

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.touch.update(g.touchIDs)
	dir := DeriveDirection(readKeyboard())
	if dir == (Vec2{}) {
		dir = g.touch.Direction()
	}
	g.player.SetDirection(dir)

	g.Advance(g.clock())
	return nil
}

// handleInput processes edge-triggered control keys: P pause, R restart,
// C copy run report to the clipboard.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	currentKeys[ebiten.KeyP] = ebiten.IsKeyPressed(ebiten.KeyP)
	if currentKeys[ebiten.KeyP] && !g.prevKeys[ebiten.KeyP] {
		g.paused = !g.paused
	}

	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] {
		g.Restart()
		g.showNote("restarted")
	}

	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		if err := copyToClipboard(g.Report()); err != nil {
			g.showNote("clipboard: " + err.Error())
		} else {
			g.showNote("report copied")
		}
	}

	g.prevKeys = currentKeys
}

// showNote flashes a short HUD notice for two seconds.
func (g *Game) showNote(msg string) {
	g.noteText = msg
	g.noteUntil = g.clock() + 2000
}

// Draw renders the frame: background, vision cones, enemy bodies, player,
// HUD overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.ensureConeBuf(screen)
	g.drawCones(screen, false, coneColor)
	g.drawCones(screen, true, coneAlertColor)

	for _, e := range g.enemies {
		e.Draw(screen)
	}
	g.player.Draw(screen)

	if g.hud == nil {
		g.hud = newHUD()
	}
	note := ""
	if g.clock() < g.noteUntil {
		note = g.noteText
	}
	g.hud.draw(screen, hudState{
		score:    g.score,
		detected: g.detected,
		paused:   g.paused,
		width:    g.width,
		note:     note,
	})
}

// ensureConeBuf keeps the offscreen cone buffer matched to the screen size.
// Cones render solid into the buffer and composite once with a controlled
// opacity, so overlapping cones do not blow out additively.
func (g *Game) ensureConeBuf(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.coneBuf == nil || g.coneBuf.Bounds().Dx() != w || g.coneBuf.Bounds().Dy() != h {
		g.coneBuf = ebiten.NewImage(w, h)
	}
}

// drawCones renders the vision fans of every enemy whose detected flag
// equals alerted, tinted accordingly: yellow while scanning, red while the
// player is seen.
func (g *Game) drawCones(screen *ebiten.Image, alerted bool, tint color.RGBA) {
	var path vector.Path
	n := 0
	for _, e := range g.enemies {
		if e.Detected != alerted {
			continue
		}
		e.addConePath(&path)
		n++
	}
	if n == 0 {
		return
	}

	buf := g.coneBuf
	buf.Clear()
	vector.FillPath(buf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})

	opts := &ebiten.DrawImageOptions{}
	opts.ColorScale.ScaleWithColor(tint)
	opts.ColorScale.ScaleAlpha(float32(coneOpacity))
	screen.DrawImage(buf, opts)
}

// Layout tracks the outside (window) size so the arena bounds follow
// resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
