package cancel_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound is returned when no booking matches the ID.
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyTerminal is returned when the booking is already
	// cancelled, completed, or marked no-show.
	ErrAlreadyTerminal = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrTooLateToCancel is returned when the cancellation window for the
	// service has closed.
	ErrTooLateToCancel = errors.New("cancel_booking: cancellation notice period has passed")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("cancel_booking: internal error")
)
