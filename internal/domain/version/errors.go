package version

import "errors"

var (
	// ErrVersionNotFound indicates the version doesn't exist.
	ErrVersionNotFound = errors.New("version not found")
	// ErrPromptNotFound indicates the target prompt doesn't exist.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrInvalidBumpLevel indicates an unknown bump level.
	ErrInvalidBumpLevel = errors.New("invalid version bump level")
	// ErrInvalidInput indicates invalid input for version operations.
	ErrInvalidInput = errors.New("invalid version input")
)
