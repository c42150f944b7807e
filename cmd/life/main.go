//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger(os.Stderr)
	core.SetLogger(logger)
	gg.SetLogger(logger)

	session := app.NewSession(cfg, nil)
	defer session.Close()
	if err := session.Start(); err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
