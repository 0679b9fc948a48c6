package googlemaps

import "errors"

var (
	// ErrProviderUnavailable is returned when the mapping provider cannot be reached.
	ErrProviderUnavailable = errors.New("googlemaps: provider unavailable")

	// ErrNoRoute is returned when the provider found no driving route to the destination.
	ErrNoRoute = errors.New("googlemaps: no route found")
)
