package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotReady is returned before the first snapshot is published.
	ErrNotReady = errors.New("no snapshot published")
)
