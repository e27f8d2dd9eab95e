package model

// Point is a canvas position in pixels, y growing downwards.
type Point struct{ X, Y float64 }

// Color is an HSL triple on the 360/100/100 scale.
type Color struct{ H, S, L float64 }

// HSL is a shorthand constructor for Color.
func HSL(h, s, l float64) Color { return Color{H: h, S: s, L: l} }

// Surface is the drawing capability consumed by the renderers in this module.
// Quads are given as start, end, end-bottom, start-bottom.
type Surface interface {
	Clear(c Color)
	FillQuad(p0, p1, p2, p3 Point, c Color)
	StrokeLine(p0, p1 Point, c Color, width float64)
}

// Canvas holds the current drawing area size. It is shared by pointer
// so a resize is seen by every component on the next tick.
type Canvas struct {
	Width, Height float64
}

func NewCanvas(w, h float64) *Canvas { return &Canvas{Width: w, Height: h} }

func (c *Canvas) Resize(w, h float64) {
	c.Width, c.Height = w, h
}
