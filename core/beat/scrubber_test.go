package beat

import (
	"testing"

	"github.com/ingyamilmolinar/sketchtone/core/model"
)

type lineRecorder struct{ xs []float64 }

func (*lineRecorder) Clear(model.Color)                              {}
func (*lineRecorder) FillQuad(_, _, _, _ model.Point, _ model.Color) {}
func (r *lineRecorder) StrokeLine(a, b model.Point, _ model.Color, _ float64) {
	r.xs = append(r.xs, a.X)
}

func TestScrubberWrapsPastWidth(t *testing.T) {
	s := NewScrubber(model.NewCanvas(800, 600))
	s.X = 798

	var swept []float64
	s.OnSweep = func(x float64, _ model.Surface) { swept = append(swept, x) }
	var r lineRecorder
	for i := 0; i < 4; i++ {
		s.Tick(&r)
	}

	want := []float64{798, 0, 3, 6}
	if len(swept) != len(want) {
		t.Fatalf("swept %v, want %v", swept, want)
	}
	for i := range want {
		if swept[i] != want[i] || r.xs[i] != want[i] {
			t.Fatalf("tick %d: swept=%v line=%v want %v", i, swept[i], r.xs[i], want[i])
		}
	}
}

func TestScrubberStopsAtEdgeInclusive(t *testing.T) {
	s := NewScrubber(model.NewCanvas(9, 10))
	var r lineRecorder
	s.Tick(&r) // 0 -> 3
	s.Tick(&r) // 3 -> 6
	s.Tick(&r) // 6 -> 9, not past the width
	if s.X != 9 {
		t.Fatalf("X = %v, want 9", s.X)
	}
	s.Tick(&r)
	if s.X != 0 {
		t.Fatalf("X = %v, want wrap to 0", s.X)
	}
}

func TestScrubberSweepLineSpansCanvas(t *testing.T) {
	c := model.NewCanvas(100, 50)
	s := NewScrubber(c)
	var got [2]model.Point
	rec := &sweepCapture{fn: func(a, b model.Point) { got = [2]model.Point{a, b} }}
	s.Tick(rec)
	if got[0] != (model.Point{X: 0, Y: 0}) || got[1] != (model.Point{X: 0, Y: 50}) {
		t.Fatalf("sweep line = %v", got)
	}
}

type sweepCapture struct{ fn func(a, b model.Point) }

func (*sweepCapture) Clear(model.Color)                                       {}
func (*sweepCapture) FillQuad(_, _, _, _ model.Point, _ model.Color)          {}
func (s *sweepCapture) StrokeLine(a, b model.Point, _ model.Color, _ float64) { s.fn(a, b) }
