package prompt

import "errors"

var (
	// ErrPromptNotFound indicates the prompt doesn't exist for the owner.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrInvalidInput indicates invalid input for prompt operations.
	ErrInvalidInput = errors.New("invalid prompt input")
	// ErrStructureTypeFixed indicates an attempt to change the structure
	// type after creation.
	ErrStructureTypeFixed = errors.New("structure type cannot be changed after creation")
)
