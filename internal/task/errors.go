package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidParent     = errors.New("invalid parent")
	ErrCircularReference = errors.New("circular reference")
	ErrValidation        = errors.New("validation error")
)
