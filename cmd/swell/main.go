//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"swell/internal/app"
	"swell/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.SceneConfig()
	if err != nil {
		log.Fatal(err)
	}
	sim := scene.New(sc)

	sound, closeSound := app.OpenSound(cfg.Mute)
	defer closeSound()

	game := app.New(sim, cfg, sound)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("swell - " + sim.Weather().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
