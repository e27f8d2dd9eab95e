//go:build test

package ui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/sketchtone/core/engine"
	"github.com/ingyamilmolinar/sketchtone/internal/app"
	"github.com/ingyamilmolinar/sketchtone/internal/audio"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
)

var testLogger = game_log.New(&bytes.Buffer{}, game_log.LevelError)

func newTestGame() *Game {
	snd := audio.NewEngine(testLogger, audio.WithOffline())
	return New(testLogger, app.New(testLogger, engine.DefaultOptions(), snd))
}

// step runs one Update with the pointer at (x,y) and the given keys held.
func step(g *Game, x, y int, down bool, keys ...ebiten.Key) {
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return down && b == ebiten.MouseButtonLeft },
		func(k ebiten.Key) bool {
			for _, held := range keys {
				if k == held {
					return true
				}
			}
			return false
		},
	)
	defer restore()
	if err := g.Update(); err != nil {
		panic(err)
	}
}
