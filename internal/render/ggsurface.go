package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/ingyamilmolinar/sketchtone/core/model"
)

// GGSurface draws onto an offscreen gg context, used for PNG snapshots and
// headless runs. The first drawing error is kept and reported when the image
// is saved or encoded.
type GGSurface struct {
	dc  *gg.Context
	err error
}

func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(width, height)}
}

func (s *GGSurface) Clear(c model.Color) {
	s.dc.ClearWithColor(RGBA(c))
}

func (s *GGSurface) FillQuad(p0, p1, p2, p3 model.Point, c model.Color) {
	s.dc.SetColor(RGBA(c).Color())
	s.dc.MoveTo(p0.X, p0.Y)
	s.dc.LineTo(p1.X, p1.Y)
	s.dc.LineTo(p2.X, p2.Y)
	s.dc.LineTo(p3.X, p3.Y)
	s.dc.ClosePath()
	s.keep(s.dc.Fill())
}

func (s *GGSurface) StrokeLine(p0, p1 model.Point, c model.Color, width float64) {
	s.dc.SetColor(RGBA(c).Color())
	if p0 == p1 {
		// a zero-length stroke is a dot
		s.dc.DrawCircle(p0.X, p0.Y, width/2)
		s.keep(s.dc.Fill())
		return
	}
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	s.keep(s.dc.Stroke())
}

func (s *GGSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first error hit while drawing, if any.
func (s *GGSurface) Err() error { return s.err }

func (s *GGSurface) Context() *gg.Context { return s.dc }

func (s *GGSurface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("save snapshot %s: draw: %w", path, s.err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func (s *GGSurface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return fmt.Errorf("encode snapshot: draw: %w", s.err)
	}
	return s.dc.EncodePNG(w)
}

func (s *GGSurface) Close() error { return s.dc.Close() }

// Snapshot replays a frame onto a fresh gg surface of the canvas size.
func Snapshot(frame *DisplayList, canvas *model.Canvas) *GGSurface {
	s := NewGGSurface(int(canvas.Width), int(canvas.Height))
	frame.Replay(s)
	return s
}
