package engine

type Direction int

const (
	DirUnknown Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Segmenter watches horizontal pointer motion and reports reversals. A voice
// maps each x to a single y, so a stroke that doubles back must continue in
// a new shape.
type Segmenter struct {
	last Direction
}

func (s *Segmenter) Reset() { s.last = DirUnknown }

func (s *Segmenter) Direction() Direction { return s.last }

// Observe records the move from prevX to curX and reports whether it
// reverses the established direction. Moves with no horizontal change are
// ignored.
func (s *Segmenter) Observe(prevX, curX float64) bool {
	var d Direction
	switch {
	case curX < prevX:
		d = DirLeft
	case curX > prevX:
		d = DirRight
	default:
		return false
	}
	if s.last == DirUnknown {
		s.last = d
		return false
	}
	if d == s.last {
		return false
	}
	s.last = d
	return true
}
