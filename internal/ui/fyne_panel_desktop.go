//go:build fyne

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ingyamilmolinar/sketchtone/internal/render"
)

// FynePanelAvailable reports whether this build includes the control panel.
const FynePanelAvailable = true

// RunFynePanel launches a control window implemented with Fyne. Its buttons
// queue work onto the game loop through g.Do.
func RunFynePanel(g *Game) {
	go func() {
		a := app.New()
		w := a.NewWindow("Sketchtone")

		status := widget.NewLabel("")
		newBtn := widget.NewButton("New Session", func() {
			g.Do(func(g *Game) { g.ctl.NewSession() })
			status.SetText("new session")
		})

		saveBtn := widget.NewButton("Save Snapshot", func() {
			shots := make(chan *render.GGSurface, 1)
			g.Do(func(g *Game) { shots <- g.ctl.Capture() })
			fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
				shot := <-shots
				defer shot.Close()
				if err != nil || wc == nil {
					return
				}
				path := wc.URI().Path()
				wc.Close()
				if err := shot.SavePNG(path); err != nil {
					dialog.ShowError(err, w)
					return
				}
				status.SetText(fmt.Sprintf("saved %s", path))
			}, w)
			fd.SetFileName("sketchtone.png")
			fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
			fd.Show()
		})

		voices := widget.NewLabel("")
		refresh := widget.NewButton("Refresh", func() {
			done := make(chan string, 1)
			g.Do(func(g *Game) {
				eng := g.ctl.Engine()
				done <- fmt.Sprintf("%d shapes, %d segments, %s", len(eng.Voices())-1, eng.Store().Len(), eng.Mode())
			})
			voices.SetText(<-done)
		})

		w.SetContent(container.NewVBox(newBtn, saveBtn, refresh, voices, status))
		w.ShowAndRun()
	}()
}
