package reserve_slot

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrServiceNotFound is returned for an unrecognized service type.
	ErrServiceNotFound = errors.New("reserve_slot: service type not found")

	// ErrSlotInPast is returned when the requested slot has already started.
	ErrSlotInPast = errors.New("reserve_slot: slot is in the past")

	// ErrSlotConflict is returned when the slot is already held.
	ErrSlotConflict = errors.New("reserve_slot: slot is already reserved")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("reserve_slot: internal error")
)
