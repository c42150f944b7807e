// Command life-frames runs a board headless and writes each redraw to a PNG
// file until the requested number of frames has been captured.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"
	"lifecanvas/internal/frames"
	"lifecanvas/internal/sims/life"
)

func main() {
	fs := flag.NewFlagSet("life-frames", flag.ExitOnError)
	workers := fs.Int("workers", 4, "concurrent PNG encoders")
	cfg, err := app.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.Logger(os.Stderr)
	core.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(cfg, *workers); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("life-frames failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, workers int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rec, err := frames.NewRecorder(ctx, cfg.Out, workers)
	if err != nil {
		return err
	}

	session := app.NewSession(cfg, nil)
	defer session.Close()

	captured := 0
	session.Game().OnDraw(func(g *life.Game) {
		if captured >= cfg.Frames {
			return
		}
		if !rec.Capture(captured, session.Canvas().Snapshot()) {
			cancel()
			return
		}
		captured++
		if captured >= cfg.Frames {
			cancel()
		}
	})

	start := time.Now()
	if cfg.Frames > 0 {
		if err := session.Start(); err != nil {
			return err
		}
		err = session.Schedule().Run(ctx, 10*time.Millisecond)
	}
	if werr := rec.Close(); werr != nil {
		return werr
	}
	core.Logger().Info("life-frames: done",
		"frames", rec.Written(), "dir", cfg.Out,
		"generation", session.Game().Generation(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	if err != nil && captured >= cfg.Frames {
		return nil
	}
	return err
}
