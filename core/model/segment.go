package model

import "math"

// Segment is a straight piece of a drawn shape. Endpoints are stored with
// the smaller x first; y values are reported with the shape's jitter applied.
type Segment struct {
	start, end Point
	jitter     *Jitter // shared with every segment of the shape, may be nil
}

func NewSegment(x0, y0, x1, y1 float64, j *Jitter) *Segment {
	a, b := Point{x0, y0}, Point{x1, y1}
	if b.X < a.X {
		a, b = b, a
	}
	return &Segment{start: a, end: b, jitter: j}
}

func (s *Segment) offset() float64 {
	if s.jitter == nil {
		return 0
	}
	return s.jitter.Sample()
}

// Start returns the left endpoint including the current jitter offset.
func (s *Segment) Start() Point { return Point{s.start.X, s.start.Y + s.offset()} }

// End returns the right endpoint including the current jitter offset.
func (s *Segment) End() Point { return Point{s.end.X, s.end.Y + s.offset()} }

// EffectiveY returns the jittered y of endpoint i (0 = start, 1 = end).
func (s *Segment) EffectiveY(i int) float64 {
	if i == 0 {
		return s.start.Y + s.offset()
	}
	return s.end.Y + s.offset()
}

// MaxY is the lower on-screen endpoint, used for depth ordering.
func (s *Segment) MaxY() float64 {
	return math.Max(s.start.Y, s.end.Y) + s.offset()
}

// Raw returns the stored endpoints without jitter.
func (s *Segment) Raw() (Point, Point) { return s.start, s.end }

func (s *Segment) Jitter() *Jitter { return s.jitter }

// Spans reports whether x lies inside the segment's horizontal extent.
func (s *Segment) Spans(x float64) bool {
	return s.start.X <= x && x <= s.end.X
}

// YAt interpolates the jittered y at x. Vertical segments have no defined
// slope and always miss.
func (s *Segment) YAt(x float64) (float64, bool) {
	if !s.Spans(x) {
		return 0, false
	}
	run := s.end.X - s.start.X
	if run == 0 {
		return 0, false
	}
	off := s.offset()
	y0, y1 := s.start.Y+off, s.end.Y+off
	slope := (y1 - y0) / run
	return y0 + slope*(x-s.start.X), true
}
