package pricing

import "errors"

var (
	// ErrServiceNotFound is returned for unknown service types. Callers
	// catch this and substitute the fixed fallback quote.
	ErrServiceNotFound = errors.New("pricing: service not found")

	// ErrInvalidInput is returned for structurally invalid requests.
	ErrInvalidInput = errors.New("pricing: invalid input data")
)
