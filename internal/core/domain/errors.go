package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown cleaner strategy or cloud provider.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoSamples indicates a processed directory yielded an empty dataset.
	// Fatal to train and eval.
	ErrNoSamples = errors.New("no samples found")

	// ErrModelFormat indicates a model file could not be decoded.
	ErrModelFormat = errors.New("malformed model file")

	// ErrCloudNotConfigured indicates no cloud section was supplied.
	// Sync is skipped silently in that case.
	ErrCloudNotConfigured = errors.New("cloud sync not configured")
)
