package ui

import "image/color"

var (
	colOverlay = color.RGBA{0, 0, 0, 140}
)

const (
	overlayX = 12
	overlayY = 12
	lineH    = 16
)
