//go:build !fyne

package ui

const FynePanelAvailable = false

// RunFynePanel does nothing in builds without the fyne tag.
func RunFynePanel(*Game) {}
