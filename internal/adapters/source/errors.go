package source

import "errors"

// Sentinel kinds for loader errors.
var (
	// ErrSourceUnavailable marks an infrastructure outage: the backing
	// store could not be reached after retries. The whole load fails.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrBadDataset marks a defect in a bundled dataset literal.
	ErrBadDataset = errors.New("bad dataset")
)
