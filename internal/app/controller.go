package app

import (
	"fmt"
	"io"

	"github.com/ingyamilmolinar/sketchtone/core/engine"
	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/core/voice"
	game_log "github.com/ingyamilmolinar/sketchtone/internal/log"
	"github.com/ingyamilmolinar/sketchtone/internal/render"
)

// Instructions is shown until the first press.
const Instructions = "Click and drag to draw. Release to listen.\nN: new session   S: save snapshot"

// Audio is the sound backend the controller drives; *audio.Engine
// satisfies it.
type Audio interface {
	NewTone(id int) voice.ToneSource
	Resume() error
	Reset()
}

// Input is the pointer and key state sampled once per frame.
type Input struct {
	X, Y       float64
	Down       bool
	NewSession bool
}

// Controller turns per-frame input into engine events and keeps the last
// rendered frame so it can be drawn or saved.
type Controller struct {
	logger *game_log.Logger
	audio  Audio
	eng    *engine.Engine
	frame  render.DisplayList

	wasDown      bool
	instructions bool
	resumed      bool
}

func New(logger *game_log.Logger, opts engine.Options, a Audio) *Controller {
	c := &Controller{
		logger:       logger.With("app"),
		audio:        a,
		instructions: true,
	}
	c.eng = engine.New(logger, opts, a.NewTone)
	return c
}

// Update runs one frame.
func (c *Controller) Update(in Input) {
	if in.NewSession {
		c.NewSession()
	}
	switch {
	case in.Down && !c.wasDown:
		c.press()
	case !in.Down && c.wasDown:
		c.eng.Release()
	}
	c.wasDown = in.Down
	c.eng.Tick(model.Point{X: in.X, Y: in.Y}, &c.frame)
}

func (c *Controller) press() {
	c.instructions = false
	if !c.resumed {
		// audio may only start after a user gesture
		c.resumed = true
		if err := c.audio.Resume(); err != nil {
			c.logger.Warnf("audio unavailable, continuing silently: %v", err)
		}
	}
	c.eng.Press()
}

// NewSession discards every shape and tone and starts over.
func (c *Controller) NewSession() {
	// drop the backend's tones first so the fresh voice gets a live one
	c.audio.Reset()
	c.eng.Reset()
	c.logger.Infof("new session")
}

func (c *Controller) Resize(w, h int) {
	cv := c.eng.Canvas()
	if float64(w) == cv.Width && float64(h) == cv.Height {
		return
	}
	c.eng.Resize(float64(w), float64(h))
}

// Draw replays the last frame onto dst.
func (c *Controller) Draw(dst model.Surface) { c.frame.Replay(dst) }

// ShowInstructions reports whether the instructions overlay is visible.
func (c *Controller) ShowInstructions() bool { return c.instructions }

func (c *Controller) Engine() *engine.Engine { return c.eng }

func (c *Controller) Frame() *render.DisplayList { return &c.frame }

// Capture renders the last frame onto an offscreen gg surface. The caller
// owns the surface and must Close it.
func (c *Controller) Capture() *render.GGSurface {
	return render.Snapshot(&c.frame, c.eng.Canvas())
}

// SaveSnapshot writes the last frame to path as PNG.
func (c *Controller) SaveSnapshot(path string) error {
	s := c.Capture()
	defer s.Close()
	if err := s.SavePNG(path); err != nil {
		return err
	}
	c.logger.Infof("snapshot saved to %s", path)
	return nil
}

// WriteSnapshot encodes the last frame as PNG into w.
func (c *Controller) WriteSnapshot(w io.Writer) error {
	s := c.Capture()
	defer s.Close()
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
