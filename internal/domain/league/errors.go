package league

import "errors"

// Sentinel kinds for league errors.
var (
	ErrNilRecords      = errors.New("nil record set")
	ErrCompanyNotFound = errors.New("company not found")
	ErrPersonNotFound  = errors.New("person not found")
)
