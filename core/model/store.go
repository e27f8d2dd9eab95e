package model

import (
	"sort"

	"github.com/ingyamilmolinar/sketchtone/internal/utils"
)

const (
	SegmentHue        = 233
	SegmentSaturation = 100

	minLuminosity = 20
	maxLuminosity = 80
	lineLift      = 10 // outline is drawn this much lighter than the fill
)

// Store keeps every drawn segment in paint order: ascending by the lower
// on-screen endpoint, so segments further down the canvas cover the ones
// above them.
type Store struct {
	canvas   *Canvas
	segments []*Segment
}

func NewStore(c *Canvas) *Store {
	return &Store{canvas: c}
}

// Record adds a segment and restores paint order.
func (s *Store) Record(seg *Segment) {
	s.segments = append(s.segments, seg)
	s.Resort()
}

// Resort must run after any jitter change since offsets can swap depths.
// The full stable sort is fine for the few thousand segments a session
// produces.
func (s *Store) Resort() {
	sort.SliceStable(s.segments, func(i, j int) bool {
		return s.segments[i].MaxY() < s.segments[j].MaxY()
	})
}

// Sorted reports whether the store is currently in paint order.
func (s *Store) Sorted() bool {
	return sort.SliceIsSorted(s.segments, func(i, j int) bool {
		return s.segments[i].MaxY() < s.segments[j].MaxY()
	})
}

func (s *Store) Len() int { return len(s.segments) }

// Segments returns a copy of the segments in paint order.
func (s *Store) Segments() []*Segment {
	out := make([]*Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Clear drops every segment.
func (s *Store) Clear() { s.segments = nil }

// Luminosity maps a segment's depth to lightness: 20 at the canvas bottom,
// 80 at the top.
func (s *Store) Luminosity(seg *Segment) float64 {
	return utils.Map(seg.MaxY(), s.canvas.Height, 0, minLuminosity, maxLuminosity)
}

// Render paints each segment as a shaded quad down to the canvas bottom,
// topped by a slightly lighter outline.
func (s *Store) Render(dst Surface) {
	bottom := s.canvas.Height
	for _, seg := range s.segments {
		start, end := seg.Start(), seg.End()
		lum := s.Luminosity(seg)
		dst.FillQuad(start, end, Point{end.X, bottom}, Point{start.X, bottom},
			HSL(SegmentHue, SegmentSaturation, lum))
		dst.StrokeLine(start, end, HSL(SegmentHue, SegmentSaturation, lum+lineLift), 1)
	}
}
