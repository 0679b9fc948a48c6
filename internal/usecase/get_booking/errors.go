package get_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("get_booking: invalid input data")

	// ErrBookingNotFound is returned when no booking matches the ID.
	ErrBookingNotFound = errors.New("get_booking: booking not found")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_booking: internal error")
)
