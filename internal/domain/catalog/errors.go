package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownCategory = errors.New("unknown category")
)
