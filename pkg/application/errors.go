package application

import "errors"

var (
	// ErrNotInitialized indicates the workspace directory does not exist.
	ErrNotInitialized = errors.New("workspace not initialized")

	// ErrAlreadyInitialized indicates init was run on an existing workspace.
	ErrAlreadyInitialized = errors.New("workspace already initialized")

	// ErrComparisonNotFound indicates no comparison has the requested ID.
	ErrComparisonNotFound = errors.New("comparison not found")
)
