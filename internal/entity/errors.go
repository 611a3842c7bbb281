package entity

import "errors"

var (
	ErrConnectionFailure = errors.New("store connection failed")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrStoreFailure      = errors.New("store operation failed")
	ErrMissingFields     = errors.New("all fields must be filled")
)
