package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"shadow-patrol/internal/config"
	"shadow-patrol/internal/game"
)

type runResult struct {
	runIndex int
	seed     int64

	score        float64
	timesSpotted int
	detectedTime float64
	longestClean float64
	sightings    []int
}

func main() {
	var runs int
	var frames int
	var fps float64
	var seedBase int64
	var seedStep int64
	var levelPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 3600, "frames per run")
	flag.Float64Var(&fps, "fps", 60, "simulated frame rate")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&levelPath, "level", "", "YAML level file (built-in level when empty)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if fps <= 0 {
		fmt.Println("error: -fps must be > 0")
		return
	}

	lvl := config.Default()
	if levelPath != "" {
		var err error
		lvl, err = config.Load(levelPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Shadow Patrol headless report ===\n")
	fmt.Printf("level=%s runs=%d frames=%d fps=%g seed_base=%d seed_step=%d\n\n",
		lvl.Name, runs, frames, fps, seedBase, seedStep)

	all := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		res := runOnce(i+1, seed, frames, fps, lvl)
		all = append(all, res)
		printRun(res)
	}
	printSummary(all)
}

// runOnce drives one full run with a scripted wanderer player: every half
// second it picks a fresh random direction, with a 1-in-4 chance of standing
// still. Deterministic for a fixed seed.
func runOnce(runIndex int, seed int64, frames int, fps float64, lvl *config.Level) runResult {
	rng := rand.New(rand.NewSource(seed))
	g := game.New(lvl)

	frameMs := 1000.0 / fps
	holdFrames := int(fps / 2)
	if holdFrames < 1 {
		holdFrames = 1
	}

	var dir game.Vec2
	for f := 0; f < frames; f++ {
		if f%holdFrames == 0 {
			if rng.Intn(4) == 0 {
				dir = game.Vec2{}
			} else {
				a := rng.Float64() * 2 * math.Pi
				dir = game.Vec2{X: math.Cos(a), Y: math.Sin(a)}
			}
		}
		g.Player().SetDirection(dir)
		g.Advance(float64(f) * frameMs)
	}

	s := g.Stats()
	return runResult{
		runIndex:     runIndex,
		seed:         seed,
		score:        g.Score(),
		timesSpotted: s.TimesSpotted,
		detectedTime: s.DetectedTime,
		longestClean: s.LongestClean,
		sightings:    append([]int(nil), s.Sightings...),
	}
}

func printRun(r runResult) {
	fmt.Printf("run %d (seed=%d): score=%.1f spotted=%d detected=%.1fs longest_clean=%.1fs\n",
		r.runIndex, r.seed, r.score, r.timesSpotted, r.detectedTime, r.longestClean)
	for i, n := range r.sightings {
		fmt.Printf("  enemy %d: sightings=%d\n", i, n)
	}
}

func printSummary(all []runResult) {
	if len(all) == 0 {
		return
	}
	minScore := math.Inf(1)
	maxScore := math.Inf(-1)
	var sumScore float64
	var sumSpotted int
	for _, r := range all {
		sumScore += r.score
		sumSpotted += r.timesSpotted
		if r.score < minScore {
			minScore = r.score
		}
		if r.score > maxScore {
			maxScore = r.score
		}
	}
	fmt.Printf("\n=== summary over %d runs ===\n", len(all))
	fmt.Printf("score: mean=%.1f min=%.1f max=%.1f\n", sumScore/float64(len(all)), minScore, maxScore)
	fmt.Printf("spotted: mean=%.1f\n", float64(sumSpotted)/float64(len(all)))
}
