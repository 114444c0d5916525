package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrLimitExceeded = errors.New("limit exceeds configured maximum")
	ErrMissingTitle  = errors.New("missing title parameter")
	ErrBadYear       = errors.New("invalid year parameter")
)
