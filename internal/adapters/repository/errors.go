package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrOpenDatabase = errors.New("open database failed")
	ErrQueryFailed  = errors.New("query failed")
)
