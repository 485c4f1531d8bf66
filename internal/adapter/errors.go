package adapter

import "errors"

var (
	// ErrAssetNotFound is returned when the bundle has no such file.
	ErrAssetNotFound = errors.New("bundle asset not found")
	// ErrEmptyResponse is returned when a bundle file exists but is empty.
	ErrEmptyResponse = errors.New("empty bundle file")

	ErrServiceUnavailable = errors.New("bundle server unavailable")
	ErrServerError        = errors.New("bundle server error")
	ErrRequestRejected    = errors.New("bundle request rejected")
)
