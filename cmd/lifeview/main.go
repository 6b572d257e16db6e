//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build(cfg.Sim, cfg.WorldMap())
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Pattern != "" {
		p, err := life.LookupPattern(cfg.Pattern)
		if err != nil {
			log.Fatal(err)
		}
		if w, ok := sim.(*life.World); ok {
			life.Place(w, p, cfg.Zoom/2, cfg.Zoom/2)
		}
	}

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("Conway's Game of Life - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
