package reservation

import "errors"

var (
	// ErrSlotConflict is returned when the slot already holds an active
	// reservation. Raised by the partial unique index, not by an
	// application-level check.
	ErrSlotConflict = errors.New("reservation.repository: slot already reserved")

	// ErrReservationNotFound is returned when no active reservation
	// matches the given ID.
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
