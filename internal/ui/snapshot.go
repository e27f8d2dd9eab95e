package ui

import "errors"

var errCancelled = errors.New("cancelled")

// Overridden in tests.
var (
	askSavePath = platformAskSavePath
	notifyError = platformNotifyError
)
