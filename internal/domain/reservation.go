package domain

import "time"

// ReservationStatus is the lifecycle state of a slot reservation.
// none -> reserved -> {consumed, expired}; both end states are terminal.
type ReservationStatus string

const (
	ReservationReserved ReservationStatus = "reserved"
	ReservationConsumed ReservationStatus = "consumed"
	ReservationExpired  ReservationStatus = "expired"
)

// SlotReservation is a short-lived soft hold on an appointment slot,
// preventing two customers from completing checkout for the same
// (datetime, serviceType) simultaneously. Uniqueness among active holds
// is enforced by the persistence layer, not the application.
type SlotReservation struct {
	ID              string
	SlotDateTime    time.Time
	ServiceType     ServiceType
	CustomerEmail   string
	DurationMinutes int
	Status          ReservationStatus
	ExpiresAt       time.Time
	CreatedAt       time.Time
	ConsumedAt      *time.Time
}

// IsActive reports whether the hold still blocks the slot at the given instant.
func (r *SlotReservation) IsActive(now time.Time) bool {
	return r.Status == ReservationReserved && r.ExpiresAt.After(now)
}

// DefaultHoldMinutes is the soft-lock TTL when config does not override it.
const DefaultHoldMinutes = 10

// DefaultAppointmentMinutes is used when the caller does not estimate a duration.
const DefaultAppointmentMinutes = 30
