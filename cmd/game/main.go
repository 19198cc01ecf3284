package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"shadow-patrol/internal/config"
	"shadow-patrol/internal/game"
)

func main() {
	var levelPath string
	flag.StringVar(&levelPath, "level", "", "path to a YAML level file (built-in level when empty)")
	flag.Parse()

	lvl := config.Default()
	if levelPath != "" {
		var err error
		lvl, err = config.Load(levelPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowTitle("Shadow Patrol")
	ebiten.SetWindowSize(int(lvl.Arena.Width), int(lvl.Arena.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(lvl)); err != nil {
		log.Fatal(err)
	}
}
