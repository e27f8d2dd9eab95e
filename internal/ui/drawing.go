package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/internal/render"
)

var whiteImage *ebiten.Image

// whiteSubImage is the source texture for solid-colour triangles.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// ebitenSurface draws engine frames onto an ebiten image.
type ebitenSurface struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func (s *ebitenSurface) Clear(c model.Color) {
	s.dst.Fill(render.NRGBA(c))
}

func (s *ebitenSurface) FillQuad(p0, p1, p2, p3 model.Point, c model.Color) {
	var path vector.Path
	path.MoveTo(float32(p0.X), float32(p0.Y))
	path.LineTo(float32(p1.X), float32(p1.Y))
	path.LineTo(float32(p2.X), float32(p2.Y))
	path.LineTo(float32(p3.X), float32(p3.Y))
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	r, g, b, a := render.NRGBA(c).RGBA()
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 1, 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *ebitenSurface) StrokeLine(p0, p1 model.Point, c model.Color, width float64) {
	clr := render.NRGBA(c)
	if p0 == p1 {
		vector.DrawFilledCircle(s.dst, float32(p0.X), float32(p0.Y), float32(width/2), clr, true)
		return
	}
	vector.StrokeLine(s.dst, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), float32(width), clr, true)
}

// drawInstructions prints text over a translucent box in the top-left corner.
func drawInstructions(dst *ebiten.Image, lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	vector.DrawFilledRect(dst, overlayX-6, overlayY-4, float32(w*6+12), float32(len(lines)*lineH+8), colOverlay, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, overlayX, overlayY+i*lineH)
	}
}
