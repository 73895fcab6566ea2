package chat

import "errors"

// Error taxonomy surfaced to the entrypoint layer. Sub-component failures
// (history load, record fetch, history persist) are absorbed locally and
// never reach the caller.
var (
	// ErrInvalidInput marks an empty message or identifier, rejected before
	// any component runs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound marks an identifier that failed the existence check.
	ErrUserNotFound = errors.New("user not found")
)
