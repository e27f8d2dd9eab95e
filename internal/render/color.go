package render

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/ingyamilmolinar/sketchtone/core/model"
	"github.com/ingyamilmolinar/sketchtone/internal/utils"
)

// RGBA converts a 360/100/100 HSL colour to a gg colour. Lightness above 100
// (the outline lift on the topmost segments) saturates to white.
func RGBA(c model.Color) gg.RGBA {
	return gg.HSL(c.H, utils.Clamp(c.S/100, 0, 1), utils.Clamp(c.L/100, 0, 1))
}

// NRGBA is RGBA as a standard library colour.
func NRGBA(c model.Color) color.Color {
	return RGBA(c).Color()
}
