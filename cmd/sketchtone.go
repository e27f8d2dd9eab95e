package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/sketchtone/internal/app"
	"github.com/ingyamilmolinar/sketchtone/internal/audio"
	"github.com/ingyamilmolinar/sketchtone/internal/config"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
	"github.com/ingyamilmolinar/sketchtone/internal/ui"
)

// demoSteps is the number of pointer samples per leg of the headless stroke.
const demoSteps = 40

func main() {
	cfg, err := config.Parse("sketchtone", os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logger := game_log.New(os.Stderr, cfg.Level())

	var audioOpts []audio.Option
	if cfg.Headless {
		audioOpts = append(audioOpts, audio.WithOffline())
	}
	snd := audio.NewEngine(logger, audioOpts...)
	defer snd.Close()

	ctl := app.New(logger, cfg.EngineOptions(), snd)

	if cfg.Headless {
		stroke := app.ZigZag(float64(cfg.Width), float64(cfg.Height), demoSteps)
		err := app.RunDemo(ctl, snd, stroke, app.DemoOptions{
			Frames:       cfg.DemoFrames,
			SnapshotPath: cfg.SnapshotPath,
			WAVPath:      cfg.WAVPath,
		})
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	g := ui.New(logger, ctl)
	if cfg.Fyne {
		g.OpenPanel()
	}

	// Optional window settings (not used in WASM, but for desktop builds)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Sketchtone")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
