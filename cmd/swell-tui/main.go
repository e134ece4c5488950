package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"swell/internal/app"
	"swell/internal/scene"
	"swell/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	sc, err := cfg.SceneConfig()
	if err != nil {
		return err
	}
	sim := scene.New(sc)

	sound, closeSound := app.OpenSound(cfg.Mute)
	defer closeSound()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := tui.New(screen, sim, tui.Config{TPS: cfg.TPS, Impact: cfg.Impact}, sound)
	if err := driver.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
