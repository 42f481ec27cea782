package service

import "errors"

// Error taxonomy surfaced to the handler layer. Handlers translate
// these to HTTP statuses; anything that is none of them is a
// persistence failure and maps to a generic 500 with detail logged
// server-side only.
var (
	// ErrValidation marks malformed or missing input, detected before
	// any store access.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means no row exists for the given id. It is an
	// expected outcome, not a system failure.
	ErrNotFound = errors.New("item not found")

	// ErrPoolExhausted means the pool-wait timeout elapsed before a
	// connection freed up.
	ErrPoolExhausted = errors.New("database pool exhausted")
)
