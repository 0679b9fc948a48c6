package rules

import "errors"

var (
	// ErrServiceNotFound is returned when the request names an unknown service type.
	ErrServiceNotFound = errors.New("rules: service not found")
)
