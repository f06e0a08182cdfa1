package project

import "errors"

// Domain-specific errors for the project package.
var (
	ErrInvalidProject       = errors.New("invalid project data")
	ErrInvalidProjectUpdate = errors.New("invalid project update data")
	ErrDuplicateProject     = errors.New("project already exists")
	ErrProjectNotFound      = errors.New("project not found")
)
