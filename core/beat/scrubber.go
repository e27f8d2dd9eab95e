package beat

import "github.com/ingyamilmolinar/sketchtone/core/model"

const DefaultStep = 3

var (
	SweepColor = model.HSL(0, 100, 100)
	SweepWidth = 3.0
)

// Scrubber is the playback read-head. Every Tick it draws the sweep line,
// hands the current x and surface to OnSweep, then moves right and wraps
// past the edge.
type Scrubber struct {
	X       float64
	Step    float64
	canvas  *model.Canvas
	OnSweep func(x float64, dst model.Surface)
}

func NewScrubber(c *model.Canvas) *Scrubber {
	return &Scrubber{Step: DefaultStep, canvas: c}
}

func (s *Scrubber) Tick(dst model.Surface) {
	dst.StrokeLine(model.Point{X: s.X, Y: 0}, model.Point{X: s.X, Y: s.canvas.Height}, SweepColor, SweepWidth)
	if s.OnSweep != nil {
		s.OnSweep(s.X, dst)
	}
	s.X += s.Step
	if s.X > s.canvas.Width {
		s.X = 0
	}
}

// Reset moves the read-head back to the left edge.
func (s *Scrubber) Reset() { s.X = 0 }
