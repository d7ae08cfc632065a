package models

import "errors"

// Custom errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrNoData       = errors.New("no timing data ingested")
)
