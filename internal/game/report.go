package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// RunStats accumulates per-run gameplay analytics: how long the run lasted,
// how often and for how long the player was seen, and which enemies did the
// seeing. Reset on restart; sampled once per simulation step.
type RunStats struct {
	Frames       int
	Elapsed      float64 // seconds simulated
	DetectedTime float64 // seconds spent detected
	TimesSpotted int     // undetected → detected transitions
	Sightings    []int   // per-enemy spot transitions

	prevEnemy    []bool
	cleanStreak  float64
	LongestClean float64 // longest unbroken undetected stretch, seconds
}

func (r *RunStats) reset(enemyCount int) {
	*r = RunStats{
		Sightings: make([]int, enemyCount),
		prevEnemy: make([]bool, enemyCount),
	}
}

func (r *RunStats) record(dt float64, wasDetected, nowDetected bool, enemies []*Enemy) {
	r.Frames++
	r.Elapsed += dt

	if nowDetected {
		r.DetectedTime += dt
		r.cleanStreak = 0
	} else {
		r.cleanStreak += dt
		if r.cleanStreak > r.LongestClean {
			r.LongestClean = r.cleanStreak
		}
	}
	if nowDetected && !wasDetected {
		r.TimesSpotted++
	}
	for i, e := range enemies {
		if i >= len(r.prevEnemy) {
			break
		}
		if e.Detected && !r.prevEnemy[i] {
			r.Sightings[i]++
		}
		r.prevEnemy[i] = e.Detected
	}
}

// Stats returns the current run's accumulated analytics.
func (g *Game) Stats() *RunStats { return &g.stats }

// Report formats the current run as plain text, suitable for the clipboard
// or the headless report output.
func (g *Game) Report() string {
	s := &g.stats
	var b strings.Builder
	fmt.Fprintf(&b, "--- Shadow Patrol run report ---\n")
	fmt.Fprintf(&b, "level=%s frames=%d elapsed=%.1fs\n", g.level.Name, s.Frames, s.Elapsed)
	fmt.Fprintf(&b, "score=%.1f detected_time=%.1fs times_spotted=%d longest_clean=%.1fs\n",
		g.score, s.DetectedTime, s.TimesSpotted, s.LongestClean)
	for i, n := range s.Sightings {
		fmt.Fprintf(&b, "enemy %d: sightings=%d\n", i, n)
	}
	return b.String()
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
