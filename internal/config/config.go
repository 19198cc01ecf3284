// Package config defines level layouts: arena size, player spawn and the
// enemy patrol routes. Levels load from YAML files; Default returns the
// built-in layout used when no file is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a 2D coordinate in a level file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerDef positions the player and sets its movement parameters.
type PlayerDef struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // pixels per second
}

// EnemyDef positions one enemy, its patrol route and vision parameters.
type EnemyDef struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`            // pixels per second
	VisionAngleDeg float64 `yaml:"vision_angle_deg"` // total arc width
	VisionRange    float64 `yaml:"vision_range"`     // pixels
	Patrol         []Point `yaml:"patrol"`           // cyclic; may be empty
}

// Level is one complete layout.
type Level struct {
	Name  string `yaml:"name"`
	Arena struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"arena"`
	Player  PlayerDef  `yaml:"player"`
	Enemies []EnemyDef `yaml:"enemies"`
}

// Load reads and validates a level file.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := yaml.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return &lvl, nil
}

// Validate rejects layouts the simulation cannot run with. A zero-sized arena
// or empty patrol list is legal (degenerate but defined); negative or zero
// radii and speeds are not.
func (l *Level) Validate() error {
	if l.Arena.Width < 0 || l.Arena.Height < 0 {
		return fmt.Errorf("arena size %gx%g must not be negative", l.Arena.Width, l.Arena.Height)
	}
	if l.Player.Radius <= 0 {
		return fmt.Errorf("player radius %g must be > 0", l.Player.Radius)
	}
	if l.Player.Speed <= 0 {
		return fmt.Errorf("player speed %g must be > 0", l.Player.Speed)
	}
	for i, e := range l.Enemies {
		if e.Radius <= 0 {
			return fmt.Errorf("enemy %d: radius %g must be > 0", i, e.Radius)
		}
		if e.Speed <= 0 {
			return fmt.Errorf("enemy %d: speed %g must be > 0", i, e.Speed)
		}
		if e.VisionAngleDeg <= 0 || e.VisionAngleDeg > 360 {
			return fmt.Errorf("enemy %d: vision angle %g must be in (0, 360]", i, e.VisionAngleDeg)
		}
		if e.VisionRange <= 0 {
			return fmt.Errorf("enemy %d: vision range %g must be > 0", i, e.VisionRange)
		}
	}
	return nil
}

// Default returns the built-in level: an 800x600 arena with three patrolling
// enemies around the player's spawn.
func Default() *Level {
	lvl := &Level{Name: "default"}
	lvl.Arena.Width = 800
	lvl.Arena.Height = 600
	lvl.Player = PlayerDef{X: 400, Y: 300, Radius: 15, Speed: 200}
	lvl.Enemies = []EnemyDef{
		{
			X: 150, Y: 120, Radius: 14, Speed: 100,
			VisionAngleDeg: 60, VisionRange: 200,
			Patrol: []Point{{X: 150, Y: 120}, {X: 650, Y: 120}},
		},
		{
			X: 650, Y: 480, Radius: 14, Speed: 100,
			VisionAngleDeg: 60, VisionRange: 200,
			Patrol: []Point{{X: 650, Y: 480}, {X: 150, Y: 480}},
		},
		{
			X: 120, Y: 300, Radius: 14, Speed: 100,
			VisionAngleDeg: 60, VisionRange: 200,
			Patrol: []Point{{X: 120, Y: 300}, {X: 400, Y: 520}, {X: 680, Y: 300}, {X: 400, Y: 90}},
		},
	}
	return lvl
}
