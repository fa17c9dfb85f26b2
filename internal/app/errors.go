package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidGroupBy = errors.New("invalid group_by dimension")
)
