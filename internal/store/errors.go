package store

import "errors"

// Sentinel errors returned by bundle storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBundleFileNotFound is returned when the token, a record or the
	// manifest is absent from the bundle directory.
	ErrBundleFileNotFound = errors.New("bundle file was not found")

	// ErrInvalidAssetKind is returned for an asset kind outside the known
	// set. It prevents arbitrary file names from reaching the file system.
	ErrInvalidAssetKind = errors.New("invalid asset kind")

	// ErrBundleFileTooLarge is returned when a file exceeds MaxBundleFileSize.
	ErrBundleFileTooLarge = errors.New("bundle file is too large")

	// ErrReadingBundleFile wraps I/O failures other than absence.
	ErrReadingBundleFile = errors.New("error reading bundle file")

	// ErrWritingBundleFile wraps I/O failures while saving.
	ErrWritingBundleFile = errors.New("error writing bundle file")
)
