package create_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound is returned for an unrecognized service type.
	ErrServiceNotFound = errors.New("create_booking: service type not found")

	// ErrSlotInPast is returned when the appointment has already started.
	ErrSlotInPast = errors.New("create_booking: scheduled time is in the past")

	// ErrReservationGone is returned when the referenced reservation does
	// not exist, has expired, or was already consumed.
	ErrReservationGone = errors.New("create_booking: reservation not found or expired")

	// ErrReservationMismatch is returned when the reservation does not
	// match the booking's slot or service type.
	ErrReservationMismatch = errors.New("create_booking: reservation does not match booking details")

	// ErrSlotTaken is returned when the slot is already booked.
	ErrSlotTaken = errors.New("create_booking: slot is already booked")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
