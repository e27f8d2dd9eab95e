//go:build test || js

package ui

import "errors"

var errNoDialog = errors.New("file dialogs are not available in this build")

func platformAskSavePath() (string, error) { return "", errNoDialog }

func platformNotifyError(string, error) {}
