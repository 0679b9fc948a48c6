package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the ID.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when an active booking already occupies
	// the requested slot. Raised by the partial unique index.
	ErrSlotTaken = errors.New("booking.repository: slot already booked")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
