package domain

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid expiry date format")
	ErrScanInProgress    = errors.New("scan already in progress for scope")
	ErrOwnerNotFound     = errors.New("owner not found")
)
