package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrOpen     = errors.New("open store failed")
	ErrNotFound = errors.New("record not found")
)
