package render

import "github.com/ingyamilmolinar/sketchtone/core/model"

type OpKind int

const (
	OpClear OpKind = iota
	OpFillQuad
	OpStrokeLine
)

// Op is one recorded drawing call. Points and Width are used according to Kind.
type Op struct {
	Kind   OpKind
	Points [4]model.Point
	Color  model.Color
	Width  float64
}

// DisplayList records Surface calls so a frame computed during Update can be
// replayed onto the real target during Draw.
type DisplayList struct {
	ops []Op
}

func (d *DisplayList) Clear(c model.Color) {
	d.ops = append(d.ops[:0], Op{Kind: OpClear, Color: c})
}

func (d *DisplayList) FillQuad(p0, p1, p2, p3 model.Point, c model.Color) {
	d.ops = append(d.ops, Op{Kind: OpFillQuad, Points: [4]model.Point{p0, p1, p2, p3}, Color: c})
}

func (d *DisplayList) StrokeLine(p0, p1 model.Point, c model.Color, width float64) {
	d.ops = append(d.ops, Op{Kind: OpStrokeLine, Points: [4]model.Point{p0, p1}, Color: c, Width: width})
}

// Reset drops every recorded op.
func (d *DisplayList) Reset() { d.ops = d.ops[:0] }

func (d *DisplayList) Len() int { return len(d.ops) }

// Ops returns the recorded ops; the slice is only valid until the next frame.
func (d *DisplayList) Ops() []Op { return d.ops }

// Count returns how many ops of kind k were recorded.
func (d *DisplayList) Count(k OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Replay issues the recorded calls on dst in order.
func (d *DisplayList) Replay(dst model.Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpFillQuad:
			dst.FillQuad(op.Points[0], op.Points[1], op.Points[2], op.Points[3], op.Color)
		case OpStrokeLine:
			dst.StrokeLine(op.Points[0], op.Points[1], op.Color, op.Width)
		}
	}
}
