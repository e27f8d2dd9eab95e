package ui

import (
	"errors"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/sketchtone/internal/app"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
	"github.com/ingyamilmolinar/sketchtone/internal/render"
)

// Game adapts the controller to ebiten's Update/Draw/Layout loop.
type Game struct {
	logger  *game_log.Logger
	ctl     *app.Controller
	keys    keyEdges
	surface ebitenSurface

	// actions queued from other goroutines (control panel), run in Update
	actions chan func(*Game)

	winW, winH int
}

func New(logger *game_log.Logger, ctl *app.Controller) *Game {
	return &Game{
		logger:  logger.With("ui"),
		ctl:     ctl,
		keys:    keyEdges{},
		actions: make(chan func(*Game), 8),
	}
}

func (g *Game) Controller() *app.Controller { return g.ctl }

func (g *Game) Update() error {
drain:
	for {
		select {
		case act := <-g.actions:
			act(g)
		default:
			break drain
		}
	}

	mx, my := cursorPosition()
	in := app.Input{
		X:          float64(mx),
		Y:          float64(my),
		Down:       isMouseButtonPressed(ebiten.MouseButtonLeft),
		NewSession: g.keys.justPressed(ebiten.KeyN),
	}
	g.ctl.Update(in)

	if g.keys.justPressed(ebiten.KeyS) {
		g.SaveSnapshot()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.ctl.Draw(&g.surface)
	if g.ctl.ShowInstructions() {
		drawInstructions(screen, strings.Split(app.Instructions, "\n"))
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.ctl.Resize(w, h)
		g.logger.Debugf("layout %dx%d", w, h)
	}
	return w, h
}

// OpenPanel starts the fyne control window when the build includes it and
// reports whether it did.
func (g *Game) OpenPanel() bool {
	if !FynePanelAvailable {
		g.logger.Warnf("control panel requested but this build has no fyne support")
		return false
	}
	RunFynePanel(g)
	return true
}

// Do queues act to run on the game goroutine before the next frame.
func (g *Game) Do(act func(*Game)) {
	g.actions <- act
}

// SaveSnapshot captures the current frame and asks where to save it. The
// dialog runs on its own goroutine so the frame loop keeps going.
func (g *Game) SaveSnapshot() {
	shot := g.ctl.Capture()
	go func() {
		defer shot.Close()
		if err := g.saveCaptured(shot); err != nil {
			g.logger.Errorf("snapshot: %v", err)
			notifyError("Snapshot failed", err)
		}
	}()
}

func (g *Game) saveCaptured(shot *render.GGSurface) error {
	path, err := askSavePath()
	if errors.Is(err, errCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		path += ".png"
	}
	if err := shot.SavePNG(path); err != nil {
		return err
	}
	g.logger.Infof("snapshot saved to %s", path)
	return nil
}
