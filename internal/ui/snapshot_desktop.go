//go:build !test && !js

package ui

import (
	"errors"

	"github.com/ncruces/zenity"
	"github.com/sqweek/dialog"
)

func platformAskSavePath() (string, error) {
	path, err := dialog.File().Filter("PNG image", "png").Title("Save snapshot").Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", errCancelled
	}
	return path, err
}

func platformNotifyError(title string, err error) {
	_ = zenity.Error(err.Error(), zenity.Title(title), zenity.ErrorIcon)
}
