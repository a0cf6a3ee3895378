package ui

import "errors"

// Common UI errors
var (
	ErrNoCoordinator = errors.New("no coordinator provided")
	ErrNoConfig      = errors.New("no configuration provided")
)
